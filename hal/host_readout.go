//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

// consoleReadout mirrors the calculator display to a text console.
//
// On a terminal it keeps a live two-line region updated in place; otherwise
// it prints one line per change.
type consoleReadout struct {
	mu   sync.Mutex
	out  io.Writer
	live *uilive.Writer

	lastExpr  string
	lastValue string
	shown     bool
}

func newConsoleReadout(f *os.File) *consoleReadout {
	r := &consoleReadout{out: f}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		w := uilive.New()
		w.Out = f
		w.RefreshInterval = 50 * time.Millisecond
		w.Start()
		r.live = w
	}
	return r
}

func (r *consoleReadout) Show(expression, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shown && expression == r.lastExpr && value == r.lastValue {
		return
	}
	r.shown = true
	r.lastExpr = expression
	r.lastValue = value

	if r.live != nil {
		fmt.Fprintf(r.live, "%s\n%s\n", expression, value)
		return
	}
	if expression == "" {
		fmt.Fprintln(r.out, value)
		return
	}
	fmt.Fprintf(r.out, "%s  [%s]\n", value, expression)
}

// Close flushes and stops the live region, if any.
func (r *consoleReadout) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live != nil {
		r.live.Stop()
		r.live = nil
	}
}
