package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading is a document heading collected during conversion.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Fragment is the converted body of a document.
type Fragment struct {
	HTML     string
	Headings []Heading
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, markdown []byte) (*Fragment, error)
}

// GoldmarkConverter converts Markdown with the fixed extension set.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
			extension.Typographer,
			Admonitions,
			highlighting.NewHighlighting(
				highlighting.WithGuessLanguage(true),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			// No WithUnsafe: raw HTML in the source is omitted.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown to an HTML fragment. Goldmark has no context
// support, so conversion runs in a goroutine and the caller stops waiting on
// cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, markdown []byte) (*Fragment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		fragment *Fragment
		err      error
	}
	done := make(chan result, 1)

	go func() {
		doc := c.md.Parser().Parse(text.NewReader(markdown))

		var buf bytes.Buffer
		if err := c.md.Renderer().Render(&buf, markdown, doc); err != nil {
			done <- result{err: fmt.Errorf("rendering markdown: %w", err)}
			return
		}
		done <- result{fragment: &Fragment{
			HTML:     buf.String(),
			Headings: collectHeadings(doc, markdown),
		}}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.fragment, r.err
	}
}

func collectHeadings(doc ast.Node, source []byte) []Heading {
	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var id string
		if v, ok := h.AttributeString("id"); ok {
			switch v := v.(type) {
			case []byte:
				id = string(v)
			case string:
				id = v
			}
		}
		headings = append(headings, Heading{
			Level: h.Level,
			ID:    id,
			Text:  plainText(h, source),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// plainText concatenates the text content below n. Typographer output is
// stored as HTML entities and is decoded here.
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.WriteString(html.UnescapeString(string(c.Value)))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

var _ HTMLConverter = (*GoldmarkConverter)(nil)
