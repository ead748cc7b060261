package main

import (
	"errors"
	"testing"

	"github.com/paperdown/mdpdf"
	"github.com/paperdown/mdpdf/internal/config"
)

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     mdpdf.Request
		wantErr  error
		defaultT bool
	}{
		{
			name:     "defaults",
			args:     []string{"notes.md"},
			want:     mdpdf.Request{Input: "notes.md"},
			defaultT: true,
		},
		{
			name: "explicit output with html",
			args: []string{"notes.md", "-o", "out/final.pdf", "--html"},
			want: mdpdf.Request{Input: "notes.md", Output: "out/final.pdf", HTMLPath: "out/final.html"},
		},
		{
			name: "html next to default output",
			args: []string{"docs/notes.md", "--html"},
			want: mdpdf.Request{Input: "docs/notes.md", HTMLPath: "docs/notes.html"},
		},
		{
			name: "all document flags",
			args: []string{"a.md", "-t", "academic", "-c", "x.css", "--toc", "--page-numbers", "--landscape", "--page-size", "A4", "--margin", "2"},
			want: mdpdf.Request{
				Input: "a.md", Theme: "academic", CSSPath: "x.css",
				TOC: true, PageNumbers: true, Landscape: true,
				Page: mdpdf.PageSettings{Size: "A4", Margin: 2},
			},
		},
		{name: "no input", args: nil, wantErr: ErrUsage},
		{name: "two inputs", args: []string{"a.md", "b.md"}, wantErr: ErrUsage},
		{name: "negative margin", args: []string{"a.md", "--margin", "-1"}, wantErr: mdpdf.ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, positional, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error: %v", err)
			}
			cfg := &config.Config{}
			mergeFlags(flags, cfg)

			got, timeout, err := buildRequest(flags, positional, cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("buildRequest() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildRequest() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("request =\n%+v\nwant\n%+v", got, tt.want)
			}
			if tt.defaultT && timeout != mdpdf.DefaultTimeout {
				t.Errorf("timeout = %v, want %v", timeout, mdpdf.DefaultTimeout)
			}
		})
	}
}

func TestMergeFlags_OnlyExplicitBooleans(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{TOC: true, Landscape: true}
	flags, _, err := parseFlags([]string{"x.md", "--page-numbers"})
	if err != nil {
		t.Fatal(err)
	}
	mergeFlags(flags, cfg)

	if !cfg.TOC || !cfg.Landscape {
		t.Error("unset boolean flags must not clear config values")
	}
	if !cfg.PageNumbers {
		t.Error("--page-numbers not applied")
	}
}
