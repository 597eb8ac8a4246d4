package finsync

import "testing"

func TestMerge_InsertsMissingRowsAndColumns(t *testing.T) {
	store := mustKeyedTable(t, "date", []string{"title", "sentiment"},
		[]Value{Str("2024-01-01 09:00:00"), Str("old news"), NumInt(1)},
	)
	batch := mustKeyedTable(t, "date", []string{"title", "site"},
		[]Value{Str("2024-01-02 09:00:00"), Str("fresh news"), Str("reuters")},
	)

	store.Merge(batch)

	want := mustKeyedTable(t, "date", []string{"title", "sentiment", "site"},
		[]Value{Str("2024-01-01 09:00:00"), Str("old news"), NumInt(1), Null()},
		[]Value{Str("2024-01-02 09:00:00"), Str("fresh news"), Null(), Str("reuters")},
	)
	sameTable(t, store, want)
}

func TestMerge_Idempotence(t *testing.T) {
	batch := mustKeyedTable(t, "date", []string{"title", "text"},
		[]Value{Str("2024-01-01 09:00:00"), Str("a"), Str("body a")},
		[]Value{Str("2024-01-02 09:00:00"), Str("b"), Str("body b")},
	)

	once := NewKeyedTable("date")
	once.Merge(batch)
	twice := NewKeyedTable("date")
	twice.Merge(batch)
	twice.Merge(batch)

	sameTable(t, twice, once)
}

func TestMerge_NonDestructive(t *testing.T) {
	store := mustKeyedTable(t, "date", []string{"title", "sentiment"},
		[]Value{Str("2024-01-01 09:00:00"), Str("a"), NumInt(1)},
		[]Value{Str("2024-01-02 09:00:00"), Str("b"), NumInt(-1)},
	)
	// The batch touches only one key, and carries no sentiment value at all.
	batch := mustKeyedTable(t, "date", []string{"title"},
		[]Value{Str("2024-01-02 09:00:00"), Str("b updated")},
	)

	store.Merge(batch)

	// The overlaid cell changed, everything else survived.
	if v, _ := store.Get(Str("2024-01-02 09:00:00"), "title"); !v.Equal(Str("b updated")) {
		t.Errorf("overlaid title = %q, want %q", v.String(), "b updated")
	}
	if v, _ := store.Get(Str("2024-01-02 09:00:00"), "sentiment"); !v.Equal(NumInt(-1)) {
		t.Errorf("sentiment of merged row = %q, want -1", v.String())
	}
	if v, _ := store.Get(Str("2024-01-01 09:00:00"), "title"); !v.Equal(Str("a")) {
		t.Errorf("unrelated row title = %q, want %q", v.String(), "a")
	}
	if v, _ := store.Get(Str("2024-01-01 09:00:00"), "sentiment"); !v.Equal(NumInt(1)) {
		t.Errorf("unrelated row sentiment = %q, want 1", v.String())
	}
}

func TestMerge_NullCellsDoNotErase(t *testing.T) {
	store := mustKeyedTable(t, "date", []string{"text"},
		[]Value{Str("2024-01-01 09:00:00"), Str("kept")},
	)
	batch := mustKeyedTable(t, "date", []string{"text"},
		[]Value{Str("2024-01-01 09:00:00"), Null()},
	)

	store.Merge(batch)

	if v, _ := store.Get(Str("2024-01-01 09:00:00"), "text"); !v.Equal(Str("kept")) {
		t.Errorf("cell = %q, want %q: null batch cells must leave the store untouched", v.String(), "kept")
	}
}
