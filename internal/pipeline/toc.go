package pipeline

import (
	"html"
	"strings"
)

// TOC defaults.
const (
	DefaultTOCTitle    = "Table of Contents"
	DefaultTOCMaxDepth = 3
)

// TOCOptions controls table of contents generation.
type TOCOptions struct {
	Title    string // empty = DefaultTOCTitle
	MaxDepth int    // deepest heading level listed, 0 = DefaultTOCMaxDepth
}

// BuildTOC renders headings as a nested list inside <nav class="toc">,
// followed by a page break. Headings deeper than MaxDepth or without an ID
// are skipped. Returns "" when nothing is left to list.
func BuildTOC(headings []Heading, opts TOCOptions) string {
	title := opts.Title
	if title == "" {
		title = DefaultTOCTitle
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultTOCMaxDepth
	}

	var listed []Heading
	for _, h := range headings {
		if h.ID != "" && h.Level >= 1 && h.Level <= maxDepth {
			listed = append(listed, h)
		}
	}
	if len(listed) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc"><h2 class="toc-title">`)
	buf.WriteString(html.EscapeString(title))
	buf.WriteString("</h2>\n")

	depths := tocDepths(listed)
	depth := 0
	for i, h := range listed {
		d := depths[i]
		if d > depth {
			buf.WriteString("<ul>\n<li>")
			depth = d
		} else {
			for ; depth > d; depth-- {
				buf.WriteString("</li></ul>")
			}
			buf.WriteString("</li>\n<li>")
		}
		buf.WriteString(`<a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString("</a>")
	}
	for ; depth > 0; depth-- {
		buf.WriteString("</li></ul>")
	}
	buf.WriteString("\n")

	buf.WriteString(`</nav>` + "\n" + `<div class="toc-page-break"></div>` + "\n")
	return buf.String()
}

// tocDepths returns the nesting depth (1-based) of each heading. A heading
// nests under the nearest preceding heading of a lower level, so depth never
// grows by more than one between consecutive entries.
func tocDepths(headings []Heading) []int {
	depths := make([]int, len(headings))
	var open []int
	for i, h := range headings {
		for len(open) > 0 && open[len(open)-1] >= h.Level {
			open = open[:len(open)-1]
		}
		open = append(open, h.Level)
		depths[i] = len(open)
	}
	return depths
}

// InjectAfterBody inserts block right after the opening <body> tag, or
// prepends it when the document has none.
func InjectAfterBody(htmlContent, block string) string {
	if block == "" {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + "\n" + block + htmlContent[insertPos:]
		}
	}
	return block + htmlContent
}
