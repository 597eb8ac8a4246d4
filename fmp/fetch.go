package fmp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	mapset "github.com/deckarep/golang-set"
	"github.com/finbase/finsync"
)

// ErrNoData reports that a whole pagination run yielded zero records,
// typically because the remote source does not know the symbol.
var ErrNoData = errors.New("could not obtain data: symbol may not be available")

// CrossCheck decides when pagination may stop: once the last record of a page
// carries a Field value that is already known locally, the following pages
// are known too. The matching page stays whole in the batch; the overlap is
// absorbed by the idempotent merge, not truncated here.
type CrossCheck struct {
	Field string
	known mapset.Set
}

// NewCrossCheck validates the field name once and builds the reference set.
// Null values are not key-comparable and are left out of the set.
func NewCrossCheck(field string, known []finsync.Value) (*CrossCheck, error) {
	if field == "" {
		return nil, errors.New("cross-check field name cannot be empty")
	}
	s := mapset.NewThreadUnsafeSet()
	for _, v := range known {
		if !v.IsNull() {
			s.Add(v.Key())
		}
	}
	return &CrossCheck{Field: field, known: s}, nil
}

// hit reports whether the record's cross-check field value is already known.
func (cc *CrossCheck) hit(record map[string]any) bool {
	raw, ok := record[cc.Field]
	if !ok {
		return false
	}
	return cc.known.Contains(jsonValue(raw).Key())
}

// fetchEntries reads all pages of an endpoint for one symbol.
//
// Pages are fetched one at a time, 0-based, until a page comes back empty or
// the cross-check hits. Between two consecutive page requests the client
// waits for Delay minus the time the request itself took, clamped at zero.
// A run that never yields a record fails with ErrNoData.
func (c *Client) fetchEntries(ep endpoint, symbol string, cc *CrossCheck) ([]map[string]any, error) {
	addr := strings.NewReplacer(
		symbolPlaceholder, symbol,
		apiKeyPlaceholder, c.Key,
	).Replace(ep.url)

	var baseLine string
	if c.Reporter != nil {
		baseLine = c.Reporter.Last()
	}

	var entries []map[string]any
	for page := 0; ; page++ {
		start := c.clock()

		if c.Reporter != nil {
			c.Reporter.Printf("%s >> reading page %d...", baseLine, page+1)
		}

		var body any
		if err := c.jwget(strings.Replace(addr, pagePlaceholder, strconv.Itoa(page), 1), &body); err != nil {
			return nil, err
		}
		records, err := ep.records(body)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			break
		}
		entries = append(entries, records...)

		// The last record of the page being already known means the next
		// pages are known too.
		if cc != nil && cc.hit(entries[len(entries)-1]) {
			break
		}

		if d := c.Delay - c.clock().Sub(start); d > 0 {
			c.pause(d)
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("fetching %s for %q: %w", ep.name, symbol, ErrNoData)
	}
	return entries, nil
}

// jwget performs an HTTP GET request to the given address and decodes the
// JSON response body into data, preserving number precision.
func (c *Client) jwget(addr string, data *any) error {
	resp, err := c.httpClient().Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(data)
}

// records locates the record list in a decoded response body.
func (ep endpoint) records(body any) ([]map[string]any, error) {
	if ep.recordsPath != "" {
		jval, err := jsonpath.Get(ep.recordsPath, body)
		if err != nil {
			return nil, fmt.Errorf("cannot locate %s records at %q: %w", ep.name, ep.recordsPath, err)
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or the answer itself: unwrap the former.
		if list, ok := jval.([]any); ok && len(list) == 1 {
			if _, nested := list[0].([]any); nested {
				jval = list[0]
			}
		}
		body = jval
	}

	list, ok := body.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected %s payload: got %T, want a list", ep.name, body)
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected %s record: got %T, want an object", ep.name, item)
		}
		out = append(out, record)
	}
	return out, nil
}
