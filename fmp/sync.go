package fmp

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/finbase/finsync"
	"github.com/finbase/finsync/progress"
)

// SymbolStore holds the local storages of one symbol.
type SymbolStore struct {
	Symbol string
	News   *finsync.Storage
	Social *finsync.Storage
}

// TrimSymbol strips the exchange suffix from a symbol: "MC.PA" becomes "MC".
// FMP list endpoints only know the bare ticker.
func TrimSymbol(symbol string) string {
	if i := strings.IndexByte(symbol, '.'); i >= 0 {
		return symbol[:i]
	}
	return symbol
}

// Open loads the storages of a symbol from <DataDir>/<symbol>/, creating
// empty date-keyed tables for the storages that have no file yet. The news
// table always carries the sentiment columns, filled later by ScoreNews.
func (c *Client) Open(symbol string) (*SymbolStore, error) {
	symbol = TrimSymbol(symbol)
	dir := filepath.Join(c.DataDir, symbol)

	news := finsync.NewStorage("news", dir)
	if ok, err := news.Load(keyField); err != nil {
		return nil, err
	} else if !ok {
		news.SetTable(finsync.NewKeyedTable(keyField, colSentiment, colConfidence))
	}

	social := finsync.NewStorage("social_sentiment", dir)
	if ok, err := social.Load(keyField); err != nil {
		return nil, err
	} else if !ok {
		social.SetTable(finsync.NewKeyedTable(keyField))
	}

	return &SymbolStore{Symbol: symbol, News: news, Social: social}, nil
}

// SyncNews brings the news storage up to date. Pagination stops early once a
// page ends on a title that is already stored.
func (c *Client) SyncNews(store *SymbolStore) error {
	t := store.News.Table()
	var cc *CrossCheck
	if t.Len() > 0 {
		var err error
		cc, err = NewCrossCheck("title", t.Column("title"))
		if err != nil {
			return err
		}
	}
	return c.refresh(store.News, newsEndpoint, store.Symbol, cc)
}

// SyncSocialSentiment brings the social-sentiment storage up to date.
// Pagination stops early once a page ends on a date that is already stored.
func (c *Client) SyncSocialSentiment(store *SymbolStore) error {
	t := store.Social.Table()
	var cc *CrossCheck
	if t.Len() > 0 {
		var err error
		cc, err = NewCrossCheck(keyField, t.Keys())
		if err != nil {
			return err
		}
	}
	return c.refresh(store.Social, socialSentimentEndpoint, store.Symbol, cc)
}

// refresh fetches, normalizes, merges and persists one endpoint for one
// symbol. The storage keeps its previous content, in memory and on disk,
// when any step fails.
func (c *Client) refresh(st *finsync.Storage, ep endpoint, symbol string, cc *CrossCheck) error {
	if c.Reporter != nil {
		c.Reporter.Printf("%s: updating %s", symbol, progress.Emph(st.Name()))
	}

	entries, err := c.fetchEntries(ep, symbol, cc)
	if err != nil {
		return err
	}
	batch, err := normalize(entries, ep)
	if err != nil {
		return err
	}

	work := st.Table().Clone()
	work.Merge(batch)
	if err := work.SortByDate(ep.layout); err != nil {
		return fmt.Errorf("sorting %s for %q: %w", ep.name, symbol, err)
	}

	st.SetTable(work)
	if err := st.Save(true); err != nil {
		return err
	}
	if c.Reporter != nil {
		c.Reporter.Printf("%s: updating %s >> %d records", symbol, progress.Emph(st.Name()), work.Len())
		c.Reporter.NewLine()
	}
	return nil
}
