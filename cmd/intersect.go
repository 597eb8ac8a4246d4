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

type intersectCmd struct {
	on string
}

func (*intersectCmd) Name() string     { return "intersect" }
func (*intersectCmd) Synopsis() string { return "keeps the rows sharing a column value across CSV files" }
func (*intersectCmd) Usage() string {
	return `fns intersect -on <column> <file.csv> <file.csv...>

Reads two or more CSV files and keeps, in each one, only the rows whose value
in the given column appears in every file. Each result is written next to its
input as <name>_common.csv; the inputs are left untouched.
`
}

func (c *intersectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "date", "Column to intersect the files on.")
}

func (c *intersectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: at least two files must be specified.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	storages := make([]*finsync.Storage, f.NArg())
	tables := make([]*finsync.Table, f.NArg())
	for i, path := range f.Args() {
		name := strings.TrimSuffix(filepath.Base(path), ".csv")
		st := finsync.NewStorage(name, filepath.Dir(path))
		ok, err := st.Load("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not read %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no such file %q.\n", path)
			return subcommands.ExitFailure
		}
		storages[i] = st
		tables[i] = st.Table()
	}

	common, err := finsync.IntersectOn(tables, c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for i, t := range common {
		st := storages[i]
		out := filepath.Join(filepath.Dir(st.Path()), strings.TrimSuffix(filepath.Base(st.Path()), ".csv")+"_common.csv")
		st.SetTable(t)
		if err := st.SaveTo(out, false); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write %q: %v\n", out, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: kept %d rows in %s\n", f.Arg(i), t.Len(), out)
	}
	return subcommands.ExitSuccess
}
