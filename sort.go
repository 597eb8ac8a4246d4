package finsync

import (
	"fmt"
	"sort"
	"time"
)

// SortByDate reorders the table so that the most recent key comes first, and
// its columns alphabetically by name. Keys must be text cells parseable with
// the given time layout; they are re-rendered with the same layout after
// sorting. Sorting an already sorted table is a no-op.
func (t *Table) SortByDate(layout string) error {
	times := make([]time.Time, len(t.keys))
	for i, k := range t.keys {
		s, ok := k.Text()
		if !ok {
			return fmt.Errorf("key %q is not a date string", k.String())
		}
		tm, err := time.Parse(layout, s)
		if err != nil {
			return fmt.Errorf("invalid key date %q, want format %q: %w", s, layout, err)
		}
		times[i] = tm
	}

	order := make([]int, len(t.keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return times[order[a]].After(times[order[b]])
	})

	keys := make([]Value, len(t.keys))
	rows := make([][]Value, len(t.rows))
	for i, o := range order {
		keys[i] = Str(times[o].Format(layout))
		rows[i] = t.rows[o]
	}
	t.keys = keys
	t.rows = rows

	cols := t.Columns()
	sort.Strings(cols)
	perm := make([]int, len(cols))
	for i, name := range cols {
		perm[i] = t.colIndex(name)
	}
	for i, row := range t.rows {
		sorted := make([]Value, len(row))
		for j, o := range perm {
			sorted[j] = row[o]
		}
		t.rows[i] = sorted
	}
	t.cols = cols
	t.reindex()
	return nil
}
