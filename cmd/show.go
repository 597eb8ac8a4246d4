package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/finbase/finsync"
	"github.com/google/subcommands"
)

type showCmd struct {
	table string
	rows  int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "displays a stored table on the terminal" }
func (*showCmd) Usage() string {
	return `fns show [-t <table>] [-n <rows>] <symbol>

Displays one stored table of a symbol as a rendered markdown table,
most recent records first.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.table, "t", "news", "Table to display: news, social_sentiment or daily_sentiment.")
	f.IntVar(&c.rows, "n", 10, "Maximum number of rows to display, 0 for all.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol must be specified.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := openStore(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open storages for %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	var st *finsync.Storage
	switch c.table {
	case "news":
		st = store.News
	case "social_sentiment":
		st = store.Social
	case "daily_sentiment":
		st = finsync.NewStorage("daily_sentiment", filepath.Join(*dataDir, store.Symbol))
		if ok, err := st.Load("date"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		} else if !ok {
			fmt.Fprintf(os.Stderr, "Error: no daily sentiment stored for %s, run 'fns aggregate %s' first.\n", store.Symbol, store.Symbol)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown table %q.\n", c.table)
		f.Usage()
		return subcommands.ExitUsageError
	}

	tbl := st.Table()
	if tbl.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Error: nothing stored in %s for %s yet.\n", st.Name(), store.Symbol)
		return subcommands.ExitFailure
	}

	printMarkdown(fmt.Sprintf("# %s %s\n\n%s", store.Symbol, st.Name(), markdownTable(tbl, c.rows)))
	return subcommands.ExitSuccess
}

// markdownTable renders at most max rows of t as a markdown table, the index
// first. max <= 0 means all rows.
func markdownTable(t *finsync.Table, max int) string {
	var sb strings.Builder

	cols := t.Columns()
	sb.WriteString("| " + t.KeyName())
	for _, name := range cols {
		sb.WriteString(" | " + name)
	}
	sb.WriteString(" |\n|")
	for i := 0; i <= len(cols); i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	keys := t.Keys()
	if max > 0 && len(keys) > max {
		keys = keys[:max]
	}
	for _, key := range keys {
		sb.WriteString("| " + mdCell(key.String()))
		for _, name := range cols {
			v, _ := t.Get(key, name)
			sb.WriteString(" | " + mdCell(v.String()))
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}

// mdCell keeps a cell on one table line.
func mdCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
