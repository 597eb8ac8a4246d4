package finsync

import (
	"fmt"
	"strconv"
)

// defaultKeyName is the column name used when the index was never derived
// from a named column.
const defaultKeyName = "index"

// Table is a row-per-unique-key tabular container with named columns and
// mixed scalar cells. Missing cells are null, never absent: every row holds
// exactly one cell per column.
type Table struct {
	keyName string
	cols    []string
	keys    []Value
	rows    [][]Value
	byKey   map[string]int
}

// NewTable returns an empty table with the given columns and an anonymous
// integer-friendly index.
func NewTable(cols ...string) *Table {
	return NewKeyedTable(defaultKeyName, cols...)
}

// NewKeyedTable returns an empty table whose index is named after keyName,
// typically the canonical date field.
func NewKeyedTable(keyName string, cols ...string) *Table {
	t := &Table{
		keyName: keyName,
		cols:    append([]string(nil), cols...),
		byKey:   make(map[string]int),
	}
	return t
}

// KeyName returns the name of the index column.
func (t *Table) KeyName() string { return t.keyName }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.keys) }

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string { return append([]string(nil), t.cols...) }

// Keys returns a copy of the row index, in row order.
func (t *Table) Keys() []Value { return append([]Value(nil), t.keys...) }

// HasColumn reports whether the table has a column with that name.
func (t *Table) HasColumn(name string) bool { return t.colIndex(name) >= 0 }

// HasKey reports whether a row exists for that key.
func (t *Table) HasKey(key Value) bool {
	_, ok := t.byKey[key.Key()]
	return ok
}

func (t *Table) colIndex(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	return -1
}

// Get returns the cell at (key, column). ok is false when either the row or
// the column does not exist.
func (t *Table) Get(key Value, column string) (v Value, ok bool) {
	r, rok := t.byKey[key.Key()]
	c := t.colIndex(column)
	if !rok || c < 0 {
		return Null(), false
	}
	return t.rows[r][c], true
}

// Set writes the cell at (key, column). Both the row and the column must
// already exist.
func (t *Table) Set(key Value, column string, v Value) error {
	r, ok := t.byKey[key.Key()]
	if !ok {
		return fmt.Errorf("no row with key %q", key.String())
	}
	c := t.colIndex(column)
	if c < 0 {
		return fmt.Errorf("no column %q", column)
	}
	t.rows[r][c] = v
	return nil
}

// Column returns the cells of one column, in row order.
func (t *Table) Column(name string) []Value {
	c := t.colIndex(name)
	if c < 0 {
		return nil
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[c]
	}
	return out
}

// Insert appends an all-null row under the given key.
func (t *Table) Insert(key Value) error {
	if t.HasKey(key) {
		return fmt.Errorf("duplicate key %q", key.String())
	}
	t.byKey[key.Key()] = len(t.keys)
	t.keys = append(t.keys, key)
	t.rows = append(t.rows, make([]Value, len(t.cols)))
	return nil
}

// AddColumn appends a column, filling every existing row with def.
func (t *Table) AddColumn(name string, def Value) error {
	if t.HasColumn(name) {
		return fmt.Errorf("duplicate column %q", name)
	}
	t.cols = append(t.cols, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], def)
	}
	return nil
}

// AddRows appends rows of cells. When keys is nil, a dense increasing integer
// key sequence is assigned, starting after the current row count. When the
// table has no columns yet, integer column names are created from the first
// row's width.
func (t *Table) AddRows(rows [][]Value, keys []Value) error {
	if keys != nil && len(keys) != len(rows) {
		return fmt.Errorf("got %d keys for %d rows", len(keys), len(rows))
	}
	if len(rows) == 0 {
		return nil
	}
	if len(t.cols) == 0 && t.Len() == 0 {
		for j := range rows[0] {
			t.cols = append(t.cols, strconv.Itoa(j))
		}
	}
	for i, row := range rows {
		if len(row) != len(t.cols) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.cols))
		}
		var key Value
		if keys == nil {
			key = NumInt(int64(t.Len()))
		} else {
			key = keys[i]
		}
		if err := t.Insert(key); err != nil {
			return err
		}
		copy(t.rows[t.Len()-1], row)
	}
	return nil
}

// Query returns a new table holding the rows whose cell in the given column
// matches `op value`, in their original order.
func (t *Table) Query(column string, op Op, value Value) (*Table, error) {
	c := t.colIndex(column)
	if c < 0 {
		return nil, fmt.Errorf("no column %q", column)
	}
	out := NewKeyedTable(t.keyName, t.cols...)
	for i, row := range t.rows {
		ok, err := match(row[c], op, value)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := out.Insert(t.keys[i]); err != nil {
			return nil, err
		}
		copy(out.rows[out.Len()-1], row)
	}
	return out, nil
}

// UpdateWhere writes newValue into every target column of the rows whose cell
// in the given column matches `op value`.
func (t *Table) UpdateWhere(column string, op Op, value Value, targets []string, newValue Value) error {
	c := t.colIndex(column)
	if c < 0 {
		return fmt.Errorf("no column %q", column)
	}
	tcs := make([]int, len(targets))
	for i, name := range targets {
		tc := t.colIndex(name)
		if tc < 0 {
			return fmt.Errorf("no column %q", name)
		}
		tcs[i] = tc
	}
	for _, row := range t.rows {
		ok, err := match(row[c], op, value)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		for _, tc := range tcs {
			row[tc] = newValue
		}
	}
	return nil
}

// RemoveWhere deletes the rows whose cell in the given column matches
// `op value`.
func (t *Table) RemoveWhere(column string, op Op, value Value) error {
	c := t.colIndex(column)
	if c < 0 {
		return fmt.Errorf("no column %q", column)
	}
	keep := t.rows[:0]
	keepKeys := t.keys[:0]
	for i, row := range t.rows {
		ok, err := match(row[c], op, value)
		if err != nil {
			return err
		}
		if !ok {
			keep = append(keep, row)
			keepKeys = append(keepKeys, t.keys[i])
		}
	}
	t.rows = keep
	t.keys = keepKeys
	t.reindex()
	return nil
}

// IndexToColumn converts the index into a regular first column, named after
// the index, and replaces it with a dense integer sequence. With
// inPlace=false the receiver is left untouched and a converted copy is
// returned.
func (t *Table) IndexToColumn(inPlace bool) *Table {
	out := t
	if !inPlace {
		out = t.Clone()
	}
	out.cols = append([]string{out.keyName}, out.cols...)
	for i := range out.rows {
		out.rows[i] = append([]Value{out.keys[i]}, out.rows[i]...)
		out.keys[i] = NumInt(int64(i))
	}
	out.keyName = defaultKeyName
	out.reindex()
	return out
}

// ColumnToIndex makes the named column the index, discarding the previous
// one. The column's values must be unique. With inPlace=false the receiver is
// left untouched and a converted copy is returned.
func (t *Table) ColumnToIndex(name string, inPlace bool) (*Table, error) {
	out := t
	if !inPlace {
		out = t.Clone()
	}
	c := out.colIndex(name)
	if c < 0 {
		return nil, fmt.Errorf("no column %q", name)
	}
	seen := make(map[string]bool, len(out.rows))
	for _, row := range out.rows {
		k := row[c].Key()
		if seen[k] {
			return nil, fmt.Errorf("duplicate key %q in column %q", row[c].String(), name)
		}
		seen[k] = true
	}
	for i, row := range out.rows {
		out.keys[i] = row[c]
		out.rows[i] = append(row[:c:c], row[c+1:]...)
	}
	out.cols = append(out.cols[:c:c], out.cols[c+1:]...)
	out.keyName = name
	out.reindex()
	return out, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewKeyedTable(t.keyName, t.cols...)
	out.keys = append([]Value(nil), t.keys...)
	out.rows = make([][]Value, len(t.rows))
	for i, row := range t.rows {
		out.rows[i] = append([]Value(nil), row...)
	}
	out.reindex()
	return out
}

// reindex rebuilds the key lookup after a structural change.
func (t *Table) reindex() {
	t.byKey = make(map[string]int, len(t.keys))
	for i, k := range t.keys {
		t.byKey[k.Key()] = i
	}
}
