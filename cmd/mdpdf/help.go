package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/paperdown/mdpdf"
)

const summary = "Convert a Markdown file into a styled PDF using a bundled theme, " +
	"an optional custom stylesheet and headless Chrome for layout."

// printUsage prints the full help text wrapped to width.
func printUsage(w io.Writer, width int) {
	fmt.Fprintln(w, "Usage: mdpdf <input.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.String(summary, width))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -o, --output <path>      Output PDF (default: input with .pdf)")
	fmt.Fprintln(w, "  -t, --theme <name>       Theme: "+strings.Join(mdpdf.Themes(), ", ")+" (default "+mdpdf.DefaultTheme+")")
	fmt.Fprintln(w, "  -c, --css <path>         Custom CSS applied after the theme")
	fmt.Fprintln(w, "      --toc                Insert a table of contents")
	fmt.Fprintln(w, "      --page-numbers       Print page numbers")
	fmt.Fprintln(w, "      --landscape          Landscape orientation")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --page-size <s>      "+strings.Join(mdpdf.PageSizes(), ", ")+" (default letter)")
	fmt.Fprintf(w, "      --margin <in>        Margin in inches (%.2f-%.1f, default: theme)\n", mdpdf.MinMargin, mdpdf.MaxMargin)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run:")
	fmt.Fprintln(w, "      --config <name>      Config file name or path")
	fmt.Fprintln(w, "      --timeout <d>        Render timeout, e.g. 30s or 2m (default "+mdpdf.DefaultTimeout.String()+")")
	fmt.Fprintln(w, "      --html               Also write the composed HTML next to the PDF")
	fmt.Fprintln(w, "      --list-themes        List themes and exit")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "  -v, --verbose            Show stage timings and page count")
	fmt.Fprintln(w, "      --version            Print version and exit")
	fmt.Fprintln(w, "  -h, --help               Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDPDF_CONFIG, MDPDF_THEME, MDPDF_CSS, MDPDF_TIMEOUT, MDPDF_PAGE_SIZE")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}

// printThemes lists the registered themes with wrapped descriptions.
func printThemes(w io.Writer, width int) {
	const pad = 12
	for _, th := range mdpdf.ThemeList() {
		name := th.Name
		if name == mdpdf.DefaultTheme {
			name += "*"
		}
		desc := wordwrap.String(th.Description, max(width-pad, 20))
		lines := strings.SplitN(indent.String(desc, pad), "\n", 2)
		fmt.Fprintf(w, "  %-*s%s\n", pad-2, name, strings.TrimLeft(lines[0], " "))
		if len(lines) > 1 {
			fmt.Fprintln(w, lines[1])
		}
	}
}
