package finsync

import "testing"

func TestSortByDate(t *testing.T) {
	tbl := mustKeyedTable(t, "date", []string{"title", "site"},
		[]Value{Str("2024-01-02 09:00:00"), Str("b"), Str("x")},
		[]Value{Str("2024-03-01 10:30:00"), Str("c"), Str("y")},
		[]Value{Str("2024-01-01 09:00:00"), Str("a"), Str("z")},
	)

	if err := tbl.SortByDate(DateTimeLayout); err != nil {
		t.Fatalf("SortByDate() unexpected error: %v", err)
	}

	wantKeys := []string{"2024-03-01 10:30:00", "2024-01-02 09:00:00", "2024-01-01 09:00:00"}
	for i, k := range tbl.Keys() {
		if s, _ := k.Text(); s != wantKeys[i] {
			t.Errorf("key %d = %q, want %q", i, s, wantKeys[i])
		}
	}

	// Columns come back alphabetically, cells follow their column.
	wantCols := []string{"site", "title"}
	gotCols := tbl.Columns()
	for i := range wantCols {
		if gotCols[i] != wantCols[i] {
			t.Fatalf("Columns() = %v, want %v", gotCols, wantCols)
		}
	}
	if v, _ := tbl.Get(Str("2024-03-01 10:30:00"), "site"); !v.Equal(Str("y")) {
		t.Errorf("cell followed the wrong column: site = %q, want %q", v.String(), "y")
	}
}

func TestSortByDate_Idempotent(t *testing.T) {
	tbl := mustKeyedTable(t, "date", []string{"b_col", "a_col"},
		[]Value{Str("2024-01-02"), NumInt(1), NumInt(2)},
		[]Value{Str("2024-01-01"), NumInt(3), NumInt(4)},
	)
	if err := tbl.SortByDate(DateLayout); err != nil {
		t.Fatalf("SortByDate() unexpected error: %v", err)
	}
	once := tbl.Clone()
	if err := tbl.SortByDate(DateLayout); err != nil {
		t.Fatalf("SortByDate() unexpected error: %v", err)
	}
	sameTable(t, tbl, once)
}

func TestSortByDate_InvalidKey(t *testing.T) {
	tbl := mustKeyedTable(t, "date", []string{"v"},
		[]Value{Str("not a date"), NumInt(1)},
	)
	if err := tbl.SortByDate(DateLayout); err == nil {
		t.Fatal("SortByDate() on a non-date key expected an error, got none")
	}
}
