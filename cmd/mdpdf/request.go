package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/paperdown/mdpdf"
	"github.com/paperdown/mdpdf/internal/config"
	"github.com/paperdown/mdpdf/internal/fileutil"
	"github.com/paperdown/mdpdf/internal/hints"
)

// ErrUsage marks command-line mistakes.
var ErrUsage = errors.New("usage error")

// loadConfig reads the config file named by the flag, or by MDPDF_CONFIG.
// Without either an empty Config is returned.
func loadConfig(flagValue string, env *envConfig) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly given flags on top of cfg.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.css != "" {
		cfg.CSS = f.css
	}
	if f.set("toc") {
		cfg.TOC = f.toc
	}
	if f.set("page-numbers") {
		cfg.PageNumbers = f.pageNumbers
	}
	if f.set("landscape") {
		cfg.Landscape = f.landscape
	}
	if f.pageSize != "" {
		cfg.Page.Size = f.pageSize
	}
	if f.set("margin") {
		cfg.Page.Margin = f.margin
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
}

// buildRequest turns the merged configuration and positional arguments
// into a conversion request and render timeout.
func buildRequest(f *cliFlags, args []string, cfg *config.Config) (mdpdf.Request, time.Duration, error) {
	switch {
	case len(args) == 0:
		return mdpdf.Request{}, 0, fmt.Errorf("%w: missing input file", ErrUsage)
	case len(args) > 1:
		return mdpdf.Request{}, 0, fmt.Errorf("%w: expected one input file, got %d", ErrUsage, len(args))
	}

	if f.set("margin") && f.margin <= 0 {
		return mdpdf.Request{}, 0, fmt.Errorf("%w: %.2f", mdpdf.ErrInvalidMargin, f.margin)
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return mdpdf.Request{}, 0, fmt.Errorf("%w: --timeout: %v", ErrUsage, err)
	}
	if timeout == 0 {
		timeout = mdpdf.DefaultTimeout
	}

	req := mdpdf.Request{
		Input:       args[0],
		Output:      f.output,
		Theme:       cfg.Theme,
		CSSPath:     cfg.CSS,
		TOC:         cfg.TOC,
		PageNumbers: cfg.PageNumbers,
		Landscape:   cfg.Landscape,
		Page: mdpdf.PageSettings{
			Size:   cfg.Page.Size,
			Margin: cfg.Page.Margin,
		},
	}
	if f.html {
		out := req.Output
		if out == "" {
			out = mdpdf.DefaultOutputPath(req.Input)
		}
		req.HTMLPath = fileutil.ReplaceExt(out, ".html")
	}
	return req, timeout, nil
}
