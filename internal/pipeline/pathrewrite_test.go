package pipeline

// Notes:
// - Windows drive paths are covered by fileURL only; the rewrite tests use
//   a unix-style source directory and are skipped on Windows.

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	const sourceDir = "/docs/guide"

	tests := []struct {
		name         string
		html         string
		sourceDir    string
		wantContains []string
	}{
		{
			name:         "relative image",
			html:         `<p><img src="images/logo.png" alt="Logo"/></p>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="file:///docs/guide/images/logo.png"`, `alt="Logo"`},
		},
		{
			name:         "dot slash image",
			html:         `<img src="./a.png"/>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="file:///docs/guide/a.png"`},
		},
		{
			name:         "parent directory resolved",
			html:         `<img src="../shared/a.png"/>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="file:///docs/shared/a.png"`},
		},
		{
			name:         "percent-encoded path decoded once",
			html:         `<img src="my%20diagram.png"/>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="file:///docs/guide/my%20diagram.png"`},
		},
		{
			name:         "relative link keeps fragment",
			html:         `<a href="other.md#setup">x</a>`,
			sourceDir:    sourceDir,
			wantContains: []string{`href="file:///docs/guide/other.md#setup"`},
		},
		{
			name:         "relative link keeps query and fragment",
			html:         `<a href="other.md?x=1#s">x</a>`,
			sourceDir:    sourceDir,
			wantContains: []string{`href="file:///docs/guide/other.md?x=1#s"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#intro">x</a>`,
			sourceDir:    sourceDir,
			wantContains: []string{`href="#intro"`},
		},
		{
			name:         "external URL unchanged",
			html:         `<a href="https://example.com/a">x</a>`,
			sourceDir:    sourceDir,
			wantContains: []string{`href="https://example.com/a"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:a@example.com">x</a>`,
			sourceDir:    sourceDir,
			wantContains: []string{`href="mailto:a@example.com"`},
		},
		{
			name:         "protocol relative unchanged",
			html:         `<img src="//cdn.example.com/a.png"/>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="//cdn.example.com/a.png"`},
		},
		{
			name:         "data URI unchanged",
			html:         `<img src="data:image/png;base64,AAAA"/>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="data:image/png;base64,AAAA"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<img src="/srv/a.png"/>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="/srv/a.png"`},
		},
		{
			name:         "empty source dir returns input",
			html:         `<img src="a.png">`,
			sourceDir:    "",
			wantContains: []string{`<img src="a.png">`},
		},
		{
			name:         "code blocks survive",
			html:         "<pre class=\"chroma\"><code><span class=\"k\">if</span> a &lt; b</code></pre>",
			sourceDir:    sourceDir,
			wantContains: []string{`<span class="k">if</span> a &lt; b`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
		})
	}
}

func TestRewriteRelativePaths_RelativeSourceDir(t *testing.T) {
	t.Parallel()

	got, err := RewriteRelativePaths(`<img src="a.png"/>`, "docs")
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error: %v", err)
	}
	abs, _ := filepath.Abs(filepath.Join("docs", "a.png"))
	if !strings.Contains(got, fileURL(abs, "", "")) {
		t.Errorf("relative source dir not made absolute: %s", got)
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, query, fragment, want string
	}{
		{"/tmp/a b.png", "", "", "file:///tmp/a%20b.png"},
		{"/tmp/doc.md", "", "top", "file:///tmp/doc.md#top"},
		{"/tmp/doc.md", "v=2", "top", "file:///tmp/doc.md?v=2#top"},
		{"/tmp/café.png", "", "", "file:///tmp/caf%C3%A9.png"},
	}
	if runtime.GOOS == "windows" {
		tests = append(tests, struct{ path, query, fragment, want string }{`C:\docs\a.png`, "", "", "file:///C:/docs/a.png"})
	}

	for _, tt := range tests {
		if got := fileURL(tt.path, tt.query, tt.fragment); got != tt.want {
			t.Errorf("fileURL(%q, %q, %q) = %q, want %q", tt.path, tt.query, tt.fragment, got, tt.want)
		}
	}
}
