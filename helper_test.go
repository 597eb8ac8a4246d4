package finsync

import "testing"

// mustKeyedTable builds a table keyed by keyName from rows of raw cells.
// Each row starts with the key, followed by one cell per column.
func mustKeyedTable(t *testing.T, keyName string, cols []string, rows ...[]Value) *Table {
	t.Helper()
	tbl := NewKeyedTable(keyName, cols...)
	for _, row := range rows {
		if err := tbl.Insert(row[0]); err != nil {
			t.Fatalf("Insert(%v) unexpected error: %v", row[0], err)
		}
		for i, v := range row[1:] {
			if err := tbl.Set(row[0], cols[i], v); err != nil {
				t.Fatalf("Set(%v, %q) unexpected error: %v", row[0], cols[i], err)
			}
		}
	}
	return tbl
}

// sameTable compares two tables cell by cell, reporting differences through t.
func sameTable(t *testing.T, got, want *Table) {
	t.Helper()
	if g, w := got.Len(), want.Len(); g != w {
		t.Fatalf("table has %d rows, want %d", g, w)
	}
	gotCols, wantCols := got.Columns(), want.Columns()
	if len(gotCols) != len(wantCols) {
		t.Fatalf("table has columns %v, want %v", gotCols, wantCols)
	}
	for i := range gotCols {
		if gotCols[i] != wantCols[i] {
			t.Fatalf("table has columns %v, want %v", gotCols, wantCols)
		}
	}
	gotKeys, wantKeys := got.Keys(), want.Keys()
	for i := range gotKeys {
		if gotKeys[i].Key() != wantKeys[i].Key() {
			t.Errorf("row %d has key %q, want %q", i, gotKeys[i].String(), wantKeys[i].String())
		}
	}
	for _, key := range wantKeys {
		for _, col := range wantCols {
			g, _ := got.Get(key, col)
			w, _ := want.Get(key, col)
			if g.Key() != w.Key() {
				t.Errorf("cell (%s, %s) = %q, want %q", key.String(), col, g.String(), w.String())
			}
		}
	}
}
