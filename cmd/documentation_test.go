package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadmeCommands ensures the README is in sync with the code: every
// `fns <command>` invocation in a bash block names a registered subcommand.
func TestReadmeCommands(t *testing.T) {
	content, err := os.ReadFile("../README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	known := make(map[string]bool)
	for _, c := range Commands {
		known[c.Name()] = true
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if lang := string(fcb.Info.Segment.Value(content)); lang != "bash" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			line := strings.TrimSpace(string(seg.Value(content)))
			fields := strings.Fields(line)
			if len(fields) < 2 || fields[0] != "fns" {
				continue
			}
			if !known[fields[1]] {
				t.Errorf("README.md documents unknown command %q in %q", fields[1], line)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk README.md: %v", err)
	}
}
