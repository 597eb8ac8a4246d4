package cmd

import (
	"strings"
	"testing"

	"github.com/finbase/finsync"
)

func TestMarkdownTable(t *testing.T) {
	tbl := finsync.NewKeyedTable("date", "sentiment", "title")
	err := tbl.AddRows([][]finsync.Value{
		{finsync.NumInt(1), finsync.Str("pipes | in | titles")},
		{finsync.NumInt(-1), finsync.Str("older")},
	}, []finsync.Value{
		finsync.Str("2024-01-02"),
		finsync.Str("2024-01-01"),
	})
	if err != nil {
		t.Fatalf("AddRows() error = %v", err)
	}

	md := markdownTable(tbl, 0)
	lines := strings.Split(strings.TrimSpace(md), "\n")
	if len(lines) != 4 {
		t.Fatalf("markdownTable() has %d lines, want header, separator and 2 rows:\n%s", len(lines), md)
	}
	if want := "| date | sentiment | title |"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[2], `pipes \| in \| titles`) {
		t.Errorf("row %q does not escape pipes", lines[2])
	}

	if got := markdownTable(tbl, 1); strings.Contains(got, "older") {
		t.Errorf("markdownTable() with max 1 row still shows the second row:\n%s", got)
	}
}
