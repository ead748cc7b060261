package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrTemplateRender indicates the document template failed to execute.
var ErrTemplateRender = errors.New("document template rendering failed")

// DefaultLang is the document language when none is given.
const DefaultLang = "en"

// Page holds the parts of a complete HTML document.
type Page struct {
	Title string
	Lang  string
	CSS   string // composed stylesheet, placed in a single <style> block
	Body  string // trusted HTML from the converter
}

// DocumentTemplate renders a Page with an html/template skeleton.
type DocumentTemplate struct {
	tmpl *template.Template
}

// NewDocumentTemplate parses the skeleton template.
func NewDocumentTemplate(content string) (*DocumentTemplate, error) {
	tmpl, err := template.New("document").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &DocumentTemplate{tmpl: tmpl}, nil
}

// Render executes the template. The title is escaped; CSS and body are
// inserted as-is apart from neutralizing "</" in the stylesheet.
func (d *DocumentTemplate) Render(ctx context.Context, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lang := page.Lang
	if lang == "" {
		lang = DefaultLang
	}

	css := template.CSS(sanitizeCSS(page.CSS)) // #nosec G203 -- stylesheet comes from embedded themes or a file the user named

	body := template.HTML(page.Body) // #nosec G203 -- goldmark output without raw HTML

	data := struct {
		Title string
		Lang  string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: page.Title,
		Lang:  lang,
		CSS:   css,
		Body:  body,
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
