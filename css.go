package mdpdf

import (
	"fmt"
	"strings"
)

// pageNumberCSS prints the page number centered in the bottom margin,
// except on the first page.
const pageNumberCSS = `@page {
  @bottom-center {
    content: counter(page);
    font-size: 10pt;
    color: #666;
  }
}
@page :first {
  @bottom-center {
    content: none;
  }
}
`

// stylesheetParts are the pieces of the composed stylesheet.
type stylesheetParts struct {
	Page        string // @page size and margin
	Base        string // rules shared by all themes
	Theme       string
	Highlight   string // chroma classes for the theme's style
	PageNumbers string // empty unless page numbers are requested
	Custom      string // user stylesheet
}

// composeStylesheet joins the parts in cascade order. The custom stylesheet
// comes last so its declarations win over the theme's.
func composeStylesheet(p stylesheetParts) string {
	sections := []struct {
		label, css string
	}{
		{"page", p.Page},
		{"base", p.Base},
		{"theme", p.Theme},
		{"highlight", p.Highlight},
		{"page numbers", p.PageNumbers},
		{"custom", p.Custom},
	}

	var sb strings.Builder
	for _, s := range sections {
		if strings.TrimSpace(s.css) == "" {
			continue
		}
		fmt.Fprintf(&sb, "/* %s */\n", s.label)
		sb.WriteString(s.css)
		if !strings.HasSuffix(s.css, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// pageSetupCSS declares paper size, orientation and margin. The renderer
// prefers CSS page size, so this rule decides the geometry unless a later
// stylesheet overrides it.
func pageSetupCSS(page PageSettings, orientation string) string {
	return fmt.Sprintf("@page {\n  size: %s %s;\n  margin: %.2fin;\n}\n", page.Size, orientation, page.Margin)
}
