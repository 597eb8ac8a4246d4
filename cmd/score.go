package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbase/finsync/fmp"
	"github.com/finbase/finsync/sentiment"
	"github.com/google/subcommands"
)

type scoreCmd struct{}

func (*scoreCmd) Name() string     { return "score" }
func (*scoreCmd) Synopsis() string { return "labels stored news records with a sentiment" }
func (*scoreCmd) Usage() string {
	return `fns score <symbol...>

Labels every stored news record that has no sentiment yet with a ternary
sentiment (-1, 0 or 1) and a confidence, using the VADER rule-based analyzer
on the article text, or its title when the text is empty.

Already scored records are left untouched, so scoring is cheap to re-run
after every sync.
`
}
func (*scoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *scoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol must be specified.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	a := sentiment.NewVader()
	for _, symbol := range f.Args() {
		store, err := openStore(symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open storages for %q: %v\n", symbol, err)
			return subcommands.ExitFailure
		}
		n, err := fmp.ScoreNews(store, a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not score news for %q: %v\n", store.Symbol, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: scored %d news records\n", store.Symbol, n)
	}
	return subcommands.ExitSuccess
}
