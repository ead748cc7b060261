package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"-o", "out.pdf", "-t", "github", "-c", "x.css", "--toc", "in.md",
		"--page-size", "a4", "--margin", "1.25", "--timeout", "1m", "--html", "-v",
	})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if len(args) != 1 || args[0] != "in.md" {
		t.Errorf("args = %v, want [in.md]", args)
	}
	if flags.output != "out.pdf" || flags.theme != "github" || flags.css != "x.css" {
		t.Errorf("string flags = %q %q %q", flags.output, flags.theme, flags.css)
	}
	if !flags.toc || flags.pageNumbers || flags.landscape {
		t.Errorf("bools = toc:%v numbers:%v landscape:%v", flags.toc, flags.pageNumbers, flags.landscape)
	}
	if flags.pageSize != "a4" || flags.margin != 1.25 || flags.timeout != "1m" || !flags.html || !flags.verbose {
		t.Errorf("flags = %+v", flags)
	}
	if !flags.set("toc") || !flags.set("margin") || flags.set("landscape") {
		t.Errorf("changed = %v", flags.changed)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--nope"},
		{"--margin", "wide"},
		{"-o"},
	} {
		if _, _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%v) expected error", args)
		}
	}
}
