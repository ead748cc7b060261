package assets

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// HighlightCSS returns the class-based stylesheet for the named chroma style.
// Unknown names fall back to chroma's default style, matching how the
// highlighter itself resolves them.
func HighlightCSS(style string) (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var sb strings.Builder
	if err := formatter.WriteCSS(&sb, chromastyles.Get(style)); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrHighlightCSS, style, err)
	}
	return sb.String(), nil
}

// HasHighlightStyle reports whether chroma registers a style under name.
func HasHighlightStyle(name string) bool {
	_, ok := chromastyles.Registry[name]
	return ok
}
