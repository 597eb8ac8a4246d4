package finsync

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// storageExt is the extension of every persisted table file.
const storageExt = ".csv"

// Storage binds a Table to a CSV file on disk.
//
// A storage created with a declared column list persists headerless files:
// the schema is implicit and is imposed again on load, together with the
// declared cell kinds. A storage without declared columns persists the header
// as the first row and infers cell kinds from the data.
type Storage struct {
	name     string
	fileName string
	path     string
	cols     []string
	kinds    []Kind
	tbl      *Table
}

// NewStorage returns a storage with an inferred schema, persisted at
// <baseDir>/<fileName>.csv.
func NewStorage(fileName, baseDir string) *Storage {
	return &Storage{
		name:     displayName(fileName),
		fileName: fileName,
		path:     filepath.Join(baseDir, fileName+storageExt),
		tbl:      NewTable(),
	}
}

// NewTypedStorage returns a storage with a declared, headerless schema.
// kinds gives the cell kind of each declared column; it may be nil to sniff
// kinds from the data.
func NewTypedStorage(fileName, baseDir string, columns []string, kinds []Kind) *Storage {
	s := NewStorage(fileName, baseDir)
	s.cols = append([]string(nil), columns...)
	s.kinds = append([]Kind(nil), kinds...)
	s.tbl = NewTable(columns...)
	return s
}

// Name returns the display name of the storage, derived from its file name:
// "social_sentiment" becomes "Social Sentiment".
func (s *Storage) Name() string { return s.name }

// Path returns the file path the storage loads from and saves to.
func (s *Storage) Path() string { return s.path }

// Table returns the in-memory table.
func (s *Storage) Table() *Table { return s.tbl }

// SetTable replaces the in-memory table.
func (s *Storage) SetTable(t *Table) { s.tbl = t }

// Load reads the storage file. It returns false, with no error, when the
// file does not exist yet: the table keeps its current content. A file that
// exists but cannot be parsed is an error.
//
// When indexColumn is non-empty, that column becomes the table index;
// otherwise a dense integer index is assigned.
func (s *Storage) Load(indexColumn string) (bool, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return false, fmt.Errorf("malformed storage file %q: %w", s.path, err)
	}

	names := s.cols
	if names == nil {
		if len(records) == 0 {
			return false, fmt.Errorf("malformed storage file %q: missing header row", s.path)
		}
		names, records = records[0], records[1:]
	}

	kindOf := make(map[string]Kind, len(s.kinds))
	for i, k := range s.kinds {
		if i < len(names) {
			kindOf[names[i]] = k
		}
	}

	p := -1
	cols := make([]string, 0, len(names))
	for i, name := range names {
		if indexColumn != "" && name == indexColumn {
			p = i
			continue
		}
		cols = append(cols, name)
	}
	if indexColumn != "" && p < 0 {
		return false, fmt.Errorf("storage file %q has no index column %q", s.path, indexColumn)
	}

	keyName := defaultKeyName
	if indexColumn != "" {
		keyName = indexColumn
	}
	t := NewKeyedTable(keyName, cols...)

	for i, record := range records {
		if len(record) != len(names) {
			return false, fmt.Errorf("malformed storage file %q: row %d has %d cells, want %d", s.path, i, len(record), len(names))
		}
		key := NumInt(int64(i))
		row := make([]Value, 0, len(cols))
		for j, raw := range record {
			v, err := s.parseCell(raw, names[j], kindOf)
			if err != nil {
				return false, fmt.Errorf("malformed storage file %q: row %d column %q: %w", s.path, i, names[j], err)
			}
			if j == p {
				key = v
				continue
			}
			row = append(row, v)
		}
		if err := t.Insert(key); err != nil {
			return false, fmt.Errorf("malformed storage file %q: %w", s.path, err)
		}
		copy(t.rows[t.Len()-1], row)
	}

	s.tbl = t
	return true, nil
}

func (s *Storage) parseCell(raw, column string, kindOf map[string]Kind) (Value, error) {
	if kind, ok := kindOf[column]; ok {
		return ParseValueAs(raw, kind)
	}
	return ParseValue(raw), nil
}

// Save writes the whole table to the storage file, creating missing parent
// directories. The header row is omitted for declared schemas. With
// withIndex, the key is written as the first column.
func (s *Storage) Save(withIndex bool) error {
	return s.SaveTo(s.path, withIndex)
}

// SaveTo is Save to an alternate file path.
func (s *Storage) SaveTo(path string, withIndex bool) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	t := s.tbl

	if s.cols == nil {
		header := t.Columns()
		if withIndex {
			header = append([]string{t.keyName}, header...)
		}
		if err := w.Write(header); err != nil {
			return err
		}
	}

	record := make([]string, 0, len(t.cols)+1)
	for i, row := range t.rows {
		record = record[:0]
		if withIndex {
			record = append(record, t.keys[i].String())
		}
		for _, v := range row {
			record = append(record, v.String())
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// displayName capitalizes the words of an underscore-separated file name.
func displayName(fileName string) string {
	words := strings.Split(fileName, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
