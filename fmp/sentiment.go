package fmp

import (
	"fmt"
	"time"

	"github.com/finbase/finsync"
	"github.com/finbase/finsync/sentiment"
)

// ScoreNews labels every unscored news record with a ternary sentiment and
// its confidence, then persists the storage. A record is scored from its text
// body, falling back to its title; a record with neither stays neutral with
// zero confidence. Scored records are never rescored. It returns the number
// of records scored by this call.
func ScoreNews(store *SymbolStore, a sentiment.Analyzer) (int, error) {
	t := store.News.Table()
	pending, err := t.Query(colSentiment, finsync.Equal, finsync.Null())
	if err != nil {
		return 0, err
	}
	for _, key := range pending.Keys() {
		text := cellText(t, key, "text")
		if text == "" {
			text = cellText(t, key, "title")
		}
		label, confidence := sentiment.Neutral, 0.0
		if text != "" {
			label, confidence = sentiment.Classify(a.Score(text))
		}
		// Both cells exist: pending rows come from t itself.
		t.Set(key, colSentiment, finsync.NumInt(int64(label)))
		t.Set(key, colConfidence, finsync.NumFloat(confidence))
	}
	if pending.Len() == 0 {
		return 0, nil
	}
	return pending.Len(), store.News.Save(true)
}

func cellText(t *finsync.Table, key finsync.Value, column string) string {
	v, ok := t.Get(key, column)
	if !ok {
		return ""
	}
	s, _ := v.Text()
	return s
}

// AggregateNewsSentiment reduces a scored news table to one confidence-weighted
// sentiment per calendar day: the sum over the day's records of label times
// confidence. The result covers every day from the oldest to the newest record
// without gaps, oldest first, days without records scoring zero.
func AggregateNewsSentiment(t *finsync.Table, layout string) (*finsync.Table, error) {
	if !t.HasColumn(colSentiment) || !t.HasColumn(colConfidence) {
		return nil, fmt.Errorf("news table has no %q columns, score it first", colSentiment)
	}

	labels := t.Column(colSentiment)
	confidences := t.Column(colConfidence)
	sums := make(map[string]float64)
	var oldest, newest time.Time
	for i, key := range t.Keys() {
		s, ok := key.Text()
		if !ok {
			return nil, fmt.Errorf("news key %q is not a date string", key.String())
		}
		tm, err := time.Parse(layout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid news key date %q: %w", s, err)
		}
		day := time.Date(tm.Year(), tm.Month(), tm.Day(), 0, 0, 0, 0, time.UTC)
		if oldest.IsZero() || day.Before(oldest) {
			oldest = day
		}
		if newest.IsZero() || day.After(newest) {
			newest = day
		}
		sums[day.Format(finsync.DateLayout)] += cellFloat(labels[i]) * cellFloat(confidences[i])
	}

	out := finsync.NewKeyedTable(keyField, colSentiment)
	if oldest.IsZero() {
		return out, nil
	}
	for day := oldest; !day.After(newest); day = day.AddDate(0, 0, 1) {
		k := day.Format(finsync.DateLayout)
		if err := out.AddRows(
			[][]finsync.Value{{finsync.NumFloat(sums[k])}},
			[]finsync.Value{finsync.Str(k)},
		); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func cellFloat(v finsync.Value) float64 {
	d, ok := v.Decimal()
	if !ok {
		return 0
	}
	f, _ := d.Float64()
	return f
}
