// Package console implements a line-oriented progress renderer for build runs.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"go.trai.ch/mate/internal/ui/output"
	"go.trai.ch/mate/internal/ui/style"
)

// bannerWidth is the total rune width of a stage banner line.
const bannerWidth = 41

// Renderer implements ports.Renderer with plain chronological lines.
// Every call emits complete lines only, so concurrent workers may interleave
// lines but never fragments.
type Renderer struct {
	mu     sync.Mutex
	stdout io.Writer
	output *termenv.Output
}

// New creates a Renderer writing to stdout. A nil writer defaults to
// os.Stdout.
func New(stdout io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Renderer{
		stdout: stdout,
		output: output.New(stdout),
	}
}

// Banner prints a stage separator line, e.g.
// "= = = [COMPILING] = = = = = = = = = = = =".
func (r *Renderer) Banner(stage string) {
	var b strings.Builder
	b.WriteString("= = = [")
	b.WriteString(stage)
	b.WriteString("]")
	for b.Len()+2 <= bannerWidth {
		b.WriteString(" =")
	}

	styled := r.output.String(b.String()).Foreground(termenv.RGBColor(string(style.Blue))).String()

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.stdout, styled)
}

// Item prints the outcome line for one file operation, e.g.
// "(1/3) Compile src/main.c ... [OK]".
func (r *Renderer) Item(index, total int, msg string, err error) {
	status := r.output.String("[OK]").Foreground(termenv.RGBColor(string(style.Green))).String()
	if err != nil {
		status = r.output.String("[FAILED]").Foreground(termenv.RGBColor(string(style.Red))).String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.stdout, "(%d/%d) %s ... %s\n", index, total, msg, status)
}

// Info prints a plain line without decoration.
func (r *Renderer) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.stdout, msg)
}
