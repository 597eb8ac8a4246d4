package finsync

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStorage_Name(t *testing.T) {
	testCases := []struct {
		fileName string
		want     string
	}{
		{"social_sentiment", "Social Sentiment"},
		{"news", "News"},
		{"aapl", "Aapl"},
	}
	for _, tc := range testCases {
		if got := NewStorage(tc.fileName, "x").Name(); got != tc.want {
			t.Errorf("Name(%q) = %q, want %q", tc.fileName, got, tc.want)
		}
	}
}

func TestStorage_Load_MissingFile(t *testing.T) {
	s := NewStorage("absent", t.TempDir())
	ok, err := s.Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if ok {
		t.Fatal("Load() of a missing file returned true, want false")
	}
	if s.Table().Len() != 0 {
		t.Error("table is not empty after loading a missing file")
	}
}

func TestStorage_Load_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken"+storageExt)
	if err := os.WriteFile(path, []byte("date,close\n2024-01-01\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStorage("broken", dir)
	if _, err := s.Load(""); err == nil {
		t.Fatal("Load() of a malformed file expected an error, got none")
	}
}

func TestStorage_RoundTrip_DeclaredSchema(t *testing.T) {
	dir := t.TempDir()
	cols := []string{"date", "close", "note"}
	kinds := []Kind{KindText, KindNumber, KindText}

	s := NewTypedStorage("aapl", dir, cols, kinds)
	tbl := mustKeyedTable(t, "date", []string{"close", "note"},
		[]Value{Str("2024-01-02"), NumFloat(187.5), Str("strong, close")},
		[]Value{Str("2024-01-01"), NumFloat(185), Null()},
	)
	s.SetTable(tbl)
	if err := s.Save(true); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	// The declared schema is headerless on disk.
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(raw), "2024-01-02,187.5,\"strong, close\"\n2024-01-01,185,\n"; got != want {
		t.Errorf("persisted file = %q, want %q", got, want)
	}

	reloaded := NewTypedStorage("aapl", dir, cols, kinds)
	ok, err := reloaded.Load("date")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Load() returned false for an existing file")
	}
	sameTable(t, reloaded.Table(), tbl)
}

func TestStorage_RoundTrip_InferredSchema(t *testing.T) {
	dir := t.TempDir()

	s := NewStorage("aapl", dir)
	tbl := mustKeyedTable(t, "date", []string{"sentiment", "title"},
		[]Value{Str("2024-01-02 09:00:00"), NumInt(1), Str("up")},
		[]Value{Str("2024-01-01 09:00:00"), NumInt(-1), Str("down")},
	)
	s.SetTable(tbl)
	if err := s.Save(true); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	// The first persisted row is the header, index included.
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(raw), "date,sentiment,title\n2024-01-02 09:00:00,1,up\n2024-01-01 09:00:00,-1,down\n"; got != want {
		t.Errorf("persisted file = %q, want %q", got, want)
	}

	reloaded := NewStorage("aapl", dir)
	ok, err := reloaded.Load("date")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Load() returned false for an existing file")
	}
	sameTable(t, reloaded.Table(), tbl)
}

func TestStorage_Save_WithoutIndex(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage("keyless", dir)
	tbl := mustKeyedTable(t, "date", []string{"v"},
		[]Value{Str("2024-01-01"), NumInt(1)},
	)
	s.SetTable(tbl)
	if err := s.Save(false); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(raw), "v\n1\n"; got != want {
		t.Errorf("persisted file = %q, want %q", got, want)
	}
}

func TestStorage_Save_CreatesParentDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fmp", "news")
	s := NewStorage("aapl", dir)
	if err := s.Save(true); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("storage file was not created: %v", err)
	}
}
