// Package cmd implements the CLI application to keep per-symbol market
// records in sync.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/finbase/finsync/fmp"
	"github.com/finbase/finsync/progress"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

const fmpApiKeyEnv = "FMP_API_KEY"

// Commands lists every subcommand of the application.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
var Commands = []subcommands.Command{
	&syncNewsCmd{},
	&syncSocialCmd{},
	&scoreCmd{},
	&aggregateCmd{},
	&showCmd{},
	&intersectCmd{},
	&briefCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "fmp", "Path to the folder holding the per-symbol CSV files")
var apiKeyFlag = flag.String("api-key", "", "FMP API key to use for consuming the financialmodelingprep.com API. This flag takes precedence over the "+fmpApiKeyEnv+" environment variable. You can get one at https://site.financialmodelingprep.com/")

// apiKey retrieves the FMP API key from the command-line flag, a .env file in
// the working directory, or the environment variable. The flag wins.
func apiKey() string {
	if *apiKeyFlag != "" {
		return *apiKeyFlag
	}
	godotenv.Overload(".env")
	return os.Getenv(fmpApiKeyEnv)
}

// newClient builds the FMP client shared by the fetching subcommands.
func newClient() (*fmp.Client, error) {
	key := apiKey()
	if key == "" {
		return nil, fmt.Errorf("FMP API key is not set. Use -api-key flag or %s environment variable", fmpApiKeyEnv)
	}
	c := fmp.New(key, *dataDir)
	c.Reporter = progress.New(os.Stderr)
	return c, nil
}

// openStore opens the local storages of a symbol. Unlike newClient it needs
// no API key: local-only subcommands use it.
func openStore(symbol string) (*fmp.SymbolStore, error) {
	return fmp.New("", *dataDir).Open(symbol)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
