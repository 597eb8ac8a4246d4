package finsync

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

// IntersectOn aligns several tables on a shared column. It reduces the
// tables pairwise to the set of column values present in all of them, then
// returns, for each input table, the subset of its rows whose column value
// belongs to that reference set, preserving each table's original row order.
//
// At least two tables are required; the column must exist in every table.
func IntersectOn(tables []*Table, column string) ([]*Table, error) {
	if len(tables) < 2 {
		return nil, fmt.Errorf("intersection needs at least 2 tables, got %d", len(tables))
	}

	sets := make([]mapset.Set, len(tables))
	for i, t := range tables {
		if !t.HasColumn(column) {
			return nil, fmt.Errorf("table %d has no column %q", i, column)
		}
		s := mapset.NewThreadUnsafeSet()
		for _, v := range t.Column(column) {
			s.Add(v.Key())
		}
		sets[i] = s
	}

	reference := sets[0]
	for _, s := range sets[1:] {
		reference = reference.Intersect(s)
	}

	out := make([]*Table, len(tables))
	for i, t := range tables {
		c := t.colIndex(column)
		filtered := NewKeyedTable(t.keyName, t.cols...)
		for r, row := range t.rows {
			if !reference.Contains(row[c].Key()) {
				continue
			}
			if err := filtered.Insert(t.keys[r]); err != nil {
				return nil, err
			}
			copy(filtered.rows[filtered.Len()-1], row)
		}
		out[i] = filtered
	}
	return out, nil
}
