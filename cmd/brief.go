package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const briefModel = "gemini-2.5-flash"

type briefCmd struct {
	tail int
}

func (*briefCmd) Name() string     { return "brief" }
func (*briefCmd) Synopsis() string { return "writes an AI brief of the latest stored news" }
func (*briefCmd) Usage() string {
	return `fns brief [-n <articles>] <symbol>

Asks Gemini for a short editorial brief of the latest stored news of a
symbol. Requires Gemini credentials in the environment, see
https://pkg.go.dev/google.golang.org/genai#NewClient.
`
}

func (c *briefCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "n", 20, "Number of most recent articles to brief.")
}

func (c *briefCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	tbl := store.News.Table()
	if tbl.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no news stored for %s, run 'fns sync-news %s' first.\n", store.Symbol, store.Symbol)
		return subcommands.ExitFailure
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are the latest stored news records for %s, newest first:\n", store.Symbol)
	keys := tbl.Keys()
	if c.tail > 0 && len(keys) > c.tail {
		keys = keys[:c.tail]
	}
	for _, key := range keys {
		title, _ := tbl.Get(key, "title")
		text, _ := tbl.Get(key, "text")
		fmt.Fprintf(&sb, "- %s: %s. %s\n", key.String(), title.String(), text.String())
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a financial news editor. Write a short markdown brief of the
		news records you are given: the main events first, then the overall
		mood. Stick to the records, do not speculate.`}}},
	}
	chat, err := client.Chats.Create(ctx, briefModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the chat:", err)
		return subcommands.ExitFailure
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: sb.String()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error briefing the news:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty response from the model.")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
