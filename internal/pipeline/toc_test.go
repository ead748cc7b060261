package pipeline

import (
	"strings"
	"testing"
)

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headings []Heading
		opts     TOCOptions
		want     string // <nav> content between the title and </nav>
	}{
		{
			name: "flat",
			headings: []Heading{
				{1, "a", "A"}, {1, "b", "B"},
			},
			want: "<ul>\n<li><a href=\"#a\">A</a></li>\n<li><a href=\"#b\">B</a></li></ul>\n",
		},
		{
			name: "nested then back out",
			headings: []Heading{
				{1, "a", "A"}, {2, "a1", "A1"}, {3, "a1x", "A1x"}, {1, "b", "B"},
			},
			want: "<ul>\n<li><a href=\"#a\">A</a><ul>\n<li><a href=\"#a1\">A1</a><ul>\n<li><a href=\"#a1x\">A1x</a></li></ul></li></ul></li>\n<li><a href=\"#b\">B</a></li></ul>\n",
		},
		{
			name: "level gap nests once and siblings stay siblings",
			headings: []Heading{
				{1, "a", "A"}, {3, "x", "X"}, {3, "y", "Y"},
			},
			want: "<ul>\n<li><a href=\"#a\">A</a><ul>\n<li><a href=\"#x\">X</a></li>\n<li><a href=\"#y\">Y</a></li></ul></li></ul>\n",
		},
		{
			name: "deeper than max depth skipped",
			headings: []Heading{
				{2, "a", "A"}, {4, "deep", "Deep"},
			},
			want: "<ul>\n<li><a href=\"#a\">A</a></li></ul>\n",
		},
		{
			name:     "text escaped",
			headings: []Heading{{1, "x", "<a> & b"}},
			want:     "<ul>\n<li><a href=\"#x\">&lt;a&gt; &amp; b</a></li></ul>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildTOC(tt.headings, tt.opts)
			prefix := `<nav class="toc"><h2 class="toc-title">Table of Contents</h2>` + "\n"
			suffix := "</nav>\n" + `<div class="toc-page-break"></div>` + "\n"
			if !strings.HasPrefix(got, prefix) || !strings.HasSuffix(got, suffix) {
				t.Fatalf("BuildTOC() framing wrong:\n%s", got)
			}
			inner := strings.TrimSuffix(strings.TrimPrefix(got, prefix), suffix)
			if inner != tt.want {
				t.Errorf("BuildTOC() list =\n%s\nwant\n%s", inner, tt.want)
			}
		})
	}
}

func TestBuildTOC_Empty(t *testing.T) {
	t.Parallel()

	if got := BuildTOC(nil, TOCOptions{}); got != "" {
		t.Errorf("BuildTOC(nil) = %q, want empty", got)
	}
	noIDs := []Heading{{Level: 1, Text: "x"}}
	if got := BuildTOC(noIDs, TOCOptions{}); got != "" {
		t.Errorf("BuildTOC(no ids) = %q, want empty", got)
	}
}

func TestBuildTOC_Options(t *testing.T) {
	t.Parallel()

	headings := []Heading{{1, "a", "A"}, {5, "e", "E"}}
	got := BuildTOC(headings, TOCOptions{Title: "Contents", MaxDepth: 6})
	if !strings.Contains(got, `<h2 class="toc-title">Contents</h2>`) {
		t.Errorf("custom title missing: %s", got)
	}
	if !strings.Contains(got, `href="#e"`) {
		t.Errorf("MaxDepth 6 should list h5: %s", got)
	}
}

func TestInjectAfterBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		html  string
		block string
		want  string
	}{
		{"after body", "<html><body><p>x</p></body></html>", "<nav></nav>", "<html><body>\n<nav></nav><p>x</p></body></html>"},
		{"body with attributes", `<BODY class="a">x`, "<nav></nav>", `<BODY class="a">` + "\n<nav></nav>x"},
		{"no body prepends", "<p>x</p>", "<nav></nav>", "<nav></nav><p>x</p>"},
		{"empty block", "<body>x", "", "<body>x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := InjectAfterBody(tt.html, tt.block); got != tt.want {
				t.Errorf("InjectAfterBody() = %q, want %q", got, tt.want)
			}
		})
	}
}
