package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line option.
type cliFlags struct {
	output      string
	theme       string
	css         string
	toc         bool
	pageNumbers bool
	landscape   bool

	config   string
	pageSize string
	margin   float64
	timeout  string
	html     bool

	listThemes bool
	verbose    bool
	quiet      bool
	version    bool
	help       bool

	// changed records flags given explicitly, so "--toc=false" can
	// override a config file that enables it.
	changed map[string]bool
}

func (f *cliFlags) set(name string) bool {
	return f.changed[name]
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdpdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	f := &cliFlags{changed: map[string]bool{}}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVarP(&f.theme, "theme", "t", "", "theme name")
	fs.StringVarP(&f.css, "css", "c", "", "custom CSS file")
	fs.BoolVar(&f.toc, "toc", false, "insert a table of contents")
	fs.BoolVar(&f.pageNumbers, "page-numbers", false, "print page numbers")
	fs.BoolVar(&f.landscape, "landscape", false, "landscape orientation")

	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.StringVar(&f.pageSize, "page-size", "", "page size: letter, a4, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches")
	fs.StringVar(&f.timeout, "timeout", "", "render timeout, e.g. 30s or 2m")
	fs.BoolVar(&f.html, "html", false, "also write the composed HTML")

	fs.BoolVar(&f.listThemes, "list-themes", false, "list themes and exit")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show stage timings")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })
	return f, fs.Args(), nil
}
