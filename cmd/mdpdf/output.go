package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/paperdown/mdpdf"
)

const defaultWidth = 80

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w if it is a terminal, then $COLUMNS,
// then fallback.
func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

// reporter writes status lines. Glyphs are only used on a terminal so
// redirected output stays plain.
type reporter struct {
	stdout, stderr io.Writer
	quiet, verbose bool
	glyphs         bool
}

func newReporter(env *Environment, quiet, verbose bool) *reporter {
	return &reporter{
		stdout:  env.Stdout,
		stderr:  env.Stderr,
		quiet:   quiet,
		verbose: verbose,
		glyphs:  isTerminal(env.Stdout) && isTerminal(env.Stderr),
	}
}

func (r *reporter) debugf(format string, args ...any) {
	if r.verbose {
		fmt.Fprintf(r.stderr, format+"\n", args...)
	}
}

func (r *reporter) success(res *mdpdf.Result, htmlPath string, elapsed time.Duration) {
	if r.quiet {
		return
	}

	prefix := "Created"
	if r.glyphs {
		prefix = "✓ Created"
	}
	fmt.Fprintf(r.stdout, "%s %s\n", prefix, res.Output)

	if htmlPath != "" {
		fmt.Fprintf(r.stdout, "  html: %s\n", htmlPath)
	}
	if !r.verbose {
		return
	}
	for _, s := range res.Stages {
		fmt.Fprintf(r.stdout, "  %-9s %v\n", s.Name, s.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(r.stdout, "  %d page(s), %s, %v total\n", res.Pages, formatSize(res.Size), elapsed.Round(time.Millisecond))
}

func (r *reporter) failure(input string, err error) {
	prefix := "error:"
	if r.glyphs {
		prefix = "✗"
	}
	if input == "" {
		fmt.Fprintf(r.stderr, "%s %v\n", prefix, err)
		return
	}
	fmt.Fprintf(r.stderr, "%s %s: %v\n", prefix, input, err)
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
