package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindAdmonition is the node kind of Admonition blocks.
var KindAdmonition = ast.NewNodeKind("Admonition")

// Admonition is a callout block:
//
//	!!! warning "Mind the gap"
//	    Indented body, any block content.
//
// Without a quoted title the capitalized type is used; an empty quoted title
// suppresses the title line.
type Admonition struct {
	ast.BaseBlock
	AdmonitionType string
	Title          string
}

// Kind implements ast.Node.
func (n *Admonition) Kind() ast.NodeKind {
	return KindAdmonition
}

// Dump implements ast.Node.
func (n *Admonition) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Type":  n.AdmonitionType,
		"Title": n.Title,
	}, nil)
}

// admonitionIndent is the body indentation, as in list continuation.
const admonitionIndent = 4

var admonitionStart = regexp.MustCompile(`^ {0,3}!!![ \t]+([A-Za-z][\w-]*)(?:[ \t]+"([^"]*)")?[ \t]*\n?$`)

type admonitionParser struct{}

func (p *admonitionParser) Trigger() []byte {
	return []byte{'!'}
}

func (p *admonitionParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	m := admonitionStart.FindSubmatch(line)
	if m == nil {
		return nil, parser.NoChildren
	}

	kind := strings.ToLower(string(m[1]))
	title := defaultAdmonitionTitle(kind)
	if m[2] != nil {
		title = string(m[2])
	}

	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
	}
	reader.Advance(n)

	return &Admonition{AdmonitionType: kind, Title: title}, parser.HasChildren
}

func (p *admonitionParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		if len(line) > 0 {
			reader.Advance(len(line) - 1)
		}
		return parser.Continue | parser.HasChildren
	}

	indent, _ := util.IndentWidth(line, reader.LineOffset())
	if indent < admonitionIndent {
		return parser.Close
	}
	pos, padding := util.IndentPosition(line, reader.LineOffset(), admonitionIndent)
	reader.AdvanceAndSetPadding(pos, padding)
	return parser.Continue | parser.HasChildren
}

func (p *admonitionParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *admonitionParser) CanInterruptParagraph() bool {
	return true
}

func (p *admonitionParser) CanAcceptIndentedLine() bool {
	return false
}

func defaultAdmonitionTitle(kind string) string {
	if kind == "" {
		return ""
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

type admonitionRenderer struct{}

func (r *admonitionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAdmonition, r.render)
}

func (r *admonitionRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Admonition)
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<div class="admonition `)
	_, _ = w.Write(util.EscapeHTML([]byte(n.AdmonitionType)))
	_, _ = w.WriteString("\">\n")
	if n.Title != "" {
		_, _ = w.WriteString(`<p class="admonition-title">`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

type admonitionExtension struct{}

// Admonitions is a goldmark extension adding `!!!` callout blocks.
var Admonitions goldmark.Extender = &admonitionExtension{}

func (e *admonitionExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&admonitionParser{}, 750),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&admonitionRenderer{}, 500),
	))
}
