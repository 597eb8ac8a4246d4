// Package fmp synchronizes per-symbol financial records (stock news,
// social-sentiment snapshots) from the Financial Modeling Prep endpoints
// into local CSV storages, without re-downloading records already known.
package fmp

import (
	"net/http"
	"time"

	"github.com/finbase/finsync"
	"github.com/finbase/finsync/progress"
)

// Placeholders substituted into endpoint URL templates.
const (
	symbolPlaceholder = "###"
	apiKeyPlaceholder = "@@@"
	pagePlaceholder   = "$$$"
)

const (
	baseURLv3 = "https://financialmodelingprep.com/api/v3/"
	baseURLv4 = "https://financialmodelingprep.com/api/v4/"
)

// DefaultCallDelay is the minimum interval between two API calls.
// The Starter plan allows 300 calls / minute,
// see https://site.financialmodelingprep.com/developer/docs/pricing
const DefaultCallDelay = time.Minute / 300

// keyField is the canonical date field every normalized record is keyed by.
const keyField = "date"

// Columns added to the news storage for the sentiment collaborator.
const (
	colSentiment  = "sentiment"             // -1: negative, 0: neutral, 1: positive
	colConfidence = "sentiment_probability" // confidence in the label, in [0,1]
)

// endpoint describes one paginated FMP list endpoint.
type endpoint struct {
	name        string
	url         string   // template with the symbol, API key and page placeholders
	dateField   string   // raw field renamed to the canonical date key; empty when already canonical
	drop        []string // fields not worth persisting
	layout      string   // date format of the endpoint keys
	recordsPath string   // JSONPath to the record list; empty when the body is the list
}

var newsEndpoint = endpoint{
	name:      "stock news",
	url:       baseURLv3 + "stock_news?tickers=" + symbolPlaceholder + "&apikey=" + apiKeyPlaceholder + "&page=" + pagePlaceholder,
	dateField: "publishedDate",
	drop:      []string{"symbol", "image"},
	layout:    finsync.DateTimeLayout,
}

var socialSentimentEndpoint = endpoint{
	name:   "social sentiment",
	url:    baseURLv4 + "historical/social-sentiment?symbol=" + symbolPlaceholder + "&apikey=" + apiKeyPlaceholder + "&page=" + pagePlaceholder,
	drop:   []string{"symbol"},
	layout: finsync.DateTimeLayout,
}

// Client fetches FMP endpoints and maintains the per-symbol storages under
// DataDir. A single Client must not run two synchronizations of the same
// symbol concurrently.
type Client struct {
	Key        string
	DataDir    string
	HTTPClient *http.Client
	Delay      time.Duration
	Reporter   *progress.Reporter

	// test seams for the rate limiter
	now   func() time.Time
	sleep func(time.Duration)
}

// New returns a client with the default HTTP client and call budget.
func New(key, dataDir string) *Client {
	return &Client{
		Key:        key,
		DataDir:    dataDir,
		HTTPClient: http.DefaultClient,
		Delay:      DefaultCallDelay,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *Client) pause(d time.Duration) {
	if c.sleep != nil {
		c.sleep(d)
		return
	}
	time.Sleep(d)
}
