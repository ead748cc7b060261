package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/paperdown/mdpdf"
)

// runMain executes the CLI and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'mdpdf --help' for usage.")
		return ExitUsage
	}

	switch {
	case flags.help:
		printUsage(env.Stdout, terminalWidth(env.Stdout, defaultWidth))
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "mdpdf %s\n", Version)
		return ExitSuccess
	case flags.listThemes:
		printThemes(env.Stdout, terminalWidth(env.Stdout, defaultWidth))
		return ExitSuccess
	}

	out := newReporter(env, flags.quiet, flags.verbose)
	if flags.quiet && flags.verbose {
		out.failure("", fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage))
		return ExitUsage
	}

	// maxprocs.Set only fails on an invalid GOMAXPROCS, where the runtime
	// default still applies.
	_, _ = maxprocs.Set(maxprocs.Logger(out.debugf))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, flags, positional, env, out); err != nil {
		input := ""
		if len(positional) == 1 {
			input = positional[0]
		}
		out.failure(input, err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(env.Stderr, "Run 'mdpdf --help' for usage.")
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func run(ctx context.Context, flags *cliFlags, positional []string, env *Environment, out *reporter) error {
	warnUnknownEnvVars(env.Stderr)

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	req, timeout, err := buildRequest(flags, positional, cfg)
	if err != nil {
		return err
	}

	out.debugf("browser: %s", describeBrowser())
	out.debugf("timeout: %v", timeout)

	conv, err := env.NewConverter(mdpdf.WithTimeout(timeout))
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	start := env.Now()
	res, err := conv.Convert(ctx, req)
	if err != nil {
		return err
	}
	out.success(res, req.HTMLPath, env.Now().Sub(start))
	return nil
}
