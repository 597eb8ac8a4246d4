package fmp

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/finbase/finsync"
	"github.com/iancoleman/strcase"
)

// MissingKeyError reports a batch of records in which no record carries the
// field the table is keyed by.
type MissingKeyError struct {
	Endpoint string
	Field    string
	Sample   map[string]any
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s records carry no %q field (sample fields: %v)", e.Endpoint, e.Field, fieldNames(e.Sample))
}

func fieldNames(record map[string]any) []string {
	names := make([]string, 0, len(record))
	for name := range record {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// canonicalField maps a raw endpoint field name to its storage column name.
func (ep endpoint) canonicalField(raw string) string {
	if raw == ep.dateField {
		return keyField
	}
	return strcase.ToSnake(raw)
}

// jsonValue converts a decoded JSON scalar to a table cell.
func jsonValue(raw any) finsync.Value {
	switch v := raw.(type) {
	case nil:
		return finsync.Null()
	case string:
		return finsync.Str(v)
	case json.Number:
		n, err := finsync.ParseValueAs(v.String(), finsync.KindNumber)
		if err != nil {
			return finsync.Str(v.String())
		}
		return n
	case float64:
		return finsync.NumFloat(v)
	case bool:
		return finsync.Str(strconv.FormatBool(v))
	default:
		return finsync.Str(fmt.Sprint(v))
	}
}

// normalize converts raw endpoint records into a date-keyed batch table.
//
// Field names are renamed to their canonical snake_case column names, the
// endpoint's date field becomes the key, and dropped fields are left out.
// Records without a date are skipped. When two records share a date, the
// later one overlays the earlier one cell by cell, skipping null cells.
func normalize(entries []map[string]any, ep endpoint) (*finsync.Table, error) {
	dropped := make(map[string]bool, len(ep.drop))
	for _, f := range ep.drop {
		dropped[f] = true
	}

	// Columns are the union of all record fields, in sorted order, so the
	// batch shape does not depend on which fields the first record carries.
	seen := make(map[string]bool)
	var cols []string
	hasKey := false
	for _, record := range entries {
		for raw := range record {
			if dropped[raw] {
				continue
			}
			name := ep.canonicalField(raw)
			if name == keyField {
				hasKey = true
				continue
			}
			if !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		}
	}
	if !hasKey {
		field := ep.dateField
		if field == "" {
			field = keyField
		}
		var sample map[string]any
		if len(entries) > 0 {
			sample = entries[0]
		}
		return nil, &MissingKeyError{Endpoint: ep.name, Field: field, Sample: sample}
	}
	sort.Strings(cols)

	colAt := make(map[string]int, len(cols))
	for i, name := range cols {
		colAt[name] = i
	}

	batch := finsync.NewKeyedTable(keyField, cols...)
	for _, record := range entries {
		key := finsync.Null()
		row := make([]finsync.Value, len(cols))
		for i := range row {
			row[i] = finsync.Null()
		}
		for raw, val := range record {
			if dropped[raw] {
				continue
			}
			cell := jsonValue(val)
			if name := ep.canonicalField(raw); name == keyField {
				key = cell
			} else {
				row[colAt[name]] = cell
			}
		}
		if key.IsNull() {
			continue
		}
		if batch.HasKey(key) {
			for i, name := range cols {
				if !row[i].IsNull() {
					batch.Set(key, name, row[i])
				}
			}
			continue
		}
		if err := batch.AddRows([][]finsync.Value{row}, []finsync.Value{key}); err != nil {
			return nil, fmt.Errorf("normalizing %s records: %w", ep.name, err)
		}
	}
	return batch, nil
}
