package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finbase/finsync"
	"github.com/finbase/finsync/fmp"
	"github.com/google/subcommands"
)

type aggregateCmd struct{}

func (*aggregateCmd) Name() string     { return "aggregate" }
func (*aggregateCmd) Synopsis() string { return "reduces scored news to one daily sentiment figure" }
func (*aggregateCmd) Usage() string {
	return `fns aggregate <symbol...>

Reduces the scored news of each symbol to one confidence-weighted sentiment
per calendar day, covering every day from the oldest to the newest article
without gaps, and writes the result to <data-dir>/<symbol>/daily_sentiment.csv.

Run 'fns score' first: unscored news cannot be aggregated.
`
}
func (*aggregateCmd) SetFlags(f *flag.FlagSet) {}

func (c *aggregateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol must be specified.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	for _, symbol := range f.Args() {
		store, err := openStore(symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open storages for %q: %v\n", symbol, err)
			return subcommands.ExitFailure
		}
		daily, err := fmp.AggregateNewsSentiment(store.News.Table(), finsync.DateTimeLayout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not aggregate news for %q: %v\n", store.Symbol, err)
			return subcommands.ExitFailure
		}

		out := finsync.NewStorage("daily_sentiment", filepath.Join(*dataDir, store.Symbol))
		out.SetTable(daily)
		if err := out.Save(true); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not save %q: %v\n", out.Path(), err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: wrote %d days to %s\n", store.Symbol, daily.Len(), out.Path())
	}
	return subcommands.ExitSuccess
}
