package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/finbase/finsync/fmp"
	"github.com/google/subcommands"
)

type syncNewsCmd struct{}

func (*syncNewsCmd) Name() string     { return "sync-news" }
func (*syncNewsCmd) Synopsis() string { return "fetches the latest stock news for the given symbols" }
func (*syncNewsCmd) Usage() string {
	return `fns sync-news <symbol...>

Fetches stock news from financialmodelingprep.com for each symbol and merges
the new records into <data-dir>/<symbol>/news.csv.

Only the pages holding unseen records are downloaded: pagination stops as
soon as a page ends on an already stored article.
`
}
func (*syncNewsCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncNewsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return syncSymbols(f, func(client *fmp.Client, store *fmp.SymbolStore) error {
		return client.SyncNews(store)
	})
}

type syncSocialCmd struct{}

func (*syncSocialCmd) Name() string { return "sync-social" }
func (*syncSocialCmd) Synopsis() string {
	return "fetches the latest social sentiment for the given symbols"
}
func (*syncSocialCmd) Usage() string {
	return `fns sync-social <symbol...>

Fetches historical social-sentiment snapshots from financialmodelingprep.com
for each symbol and merges the new records into
<data-dir>/<symbol>/social_sentiment.csv.
`
}
func (*syncSocialCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncSocialCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return syncSymbols(f, func(client *fmp.Client, store *fmp.SymbolStore) error {
		return client.SyncSocialSentiment(store)
	})
}

// syncSymbols runs one synchronization per symbol argument. A symbol unknown
// to the provider is reported and skipped, other errors stop the run.
func syncSymbols(f *flag.FlagSet, sync func(*fmp.Client, *fmp.SymbolStore) error) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol must be specified.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, symbol := range f.Args() {
		store, err := client.Open(symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open storages for %q: %v\n", symbol, err)
			return subcommands.ExitFailure
		}
		if err := sync(client, store); err != nil {
			if errors.Is(err, fmp.ErrNoData) {
				fmt.Fprintf(os.Stderr, "Warning: %v, skipping.\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
