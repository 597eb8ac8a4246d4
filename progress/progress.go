// Package progress implements a single overwritable status line for
// long-running console operations, such as paginated downloads.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Reporter owns one status line on a terminal. Each Reporter carries its own
// line state, so several scoped reporters never interfere with each other.
type Reporter struct {
	w       io.Writer
	lastLen int
	last    string
}

// New returns a reporter writing to w, typically os.Stderr.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Reprint overwrites the current status line with text. Call NewLine once the
// operation is over to release the line.
func (r *Reporter) Reprint(text string) {
	// Blank out the previous line before writing the shorter new one.
	fmt.Fprint(r.w, "\r", strings.Repeat(" ", r.lastLen), "\r", text)
	r.lastLen = len(text)
	r.last = text
}

// Printf is Reprint with a format string.
func (r *Reporter) Printf(format string, args ...any) {
	r.Reprint(fmt.Sprintf(format, args...))
}

// NewLine moves past the status line and resets the reporter state.
func (r *Reporter) NewLine() {
	fmt.Fprintln(r.w)
	r.lastLen = 0
	r.last = ""
}

// Last returns the text currently displayed, so callers can append to a base
// line ("AAPL >> reading page 3...") without tracking it themselves.
func (r *Reporter) Last() string { return r.last }

// Emph returns s emphasized for terminal display.
func Emph(s string) string { return color.New(color.FgCyan).Sprint(s) }
