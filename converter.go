package mdpdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/paperdown/mdpdf/internal/assets"
	"github.com/paperdown/mdpdf/internal/fileutil"
	"github.com/paperdown/mdpdf/internal/hints"
	"github.com/paperdown/mdpdf/internal/pipeline"
)

// Converter runs the Markdown to PDF pipeline.
// Create with NewConverter, call Convert per document, and Close when done.
type Converter struct {
	cfg      converterConfig
	loader   assets.Loader
	template *pipeline.DocumentTemplate
	markdown pipeline.HTMLConverter
	renderer Renderer
	inspect  func([]byte) (int, error)
}

// NewConverter creates a Converter. The browser is not started until the
// first Convert call.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:      converterConfig{timeout: DefaultTimeout},
		loader:   assets.NewEmbeddedLoader(),
		markdown: pipeline.NewGoldmarkConverter(),
		inspect:  inspectPDF,
	}

	for _, opt := range opts {
		opt(c)
	}

	content, err := c.loader.LoadTemplate(assets.DocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	c.template, err = pipeline.NewDocumentTemplate(content)
	if err != nil {
		return nil, err
	}

	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.timeout)
	}
	return c, nil
}

// Render runs every stage up to, but not including, PDF generation and
// returns the composed document. Nothing is written to disk.
func (c *Converter) Render(ctx context.Context, req Request) (*Document, error) {
	return c.render(ctx, req, newStageTimer())
}

// Convert renders req to PDF and writes it to the output path. On any
// error no output file is left behind. Internal panics are returned as
// errors.
func (c *Converter) Convert(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	timer := newStageTimer()
	doc, err := c.render(ctx, req, timer)
	if err != nil {
		return nil, err
	}

	output := req.Output
	if output == "" {
		output = DefaultOutputPath(req.Input)
	}
	if samePath(output, req.Input) {
		return nil, fmt.Errorf("%w: %s would overwrite the source", ErrWriteOutput, output)
	}

	if req.HTMLPath != "" {
		if samePath(req.HTMLPath, req.Input) {
			return nil, fmt.Errorf("%w: %s would overwrite the source", ErrWriteHTML, req.HTMLPath)
		}
		if samePath(req.HTMLPath, output) {
			return nil, fmt.Errorf("%w: %s is also the PDF output", ErrWriteHTML, req.HTMLPath)
		}
	}

	pdf, err := c.toPDF(ctx, doc)
	if err != nil {
		return nil, err
	}
	timer.mark("render")

	pages, err := c.inspect(pdf)
	if err != nil {
		return nil, err
	}
	timer.mark("inspect")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The HTML copy is written only once the PDF is known to be good, and
	// removed again if the PDF itself cannot be written.
	if req.HTMLPath != "" {
		if err := fileutil.WriteFile(req.HTMLPath, []byte(doc.HTML)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrWriteHTML, req.HTMLPath, err)
		}
	}
	if err := fileutil.WriteFile(output, pdf); err != nil {
		if req.HTMLPath != "" {
			_ = os.Remove(req.HTMLPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteOutput, output, err)
	}
	timer.mark("write")

	return &Result{
		Output:   output,
		Size:     len(pdf),
		Pages:    pages,
		Document: doc,
		Stages:   timer.stages,
	}, nil
}

// Close releases the browser.
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}

func (c *Converter) render(ctx context.Context, req Request, timer *stageTimer) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Input problems are reported before any rendering work.
	if err := checkSource(req.Input); err != nil {
		return nil, err
	}
	theme, err := LookupTheme(req.Theme)
	if err != nil {
		return nil, err
	}
	page, err := req.Page.normalize(theme.Margin)
	if err != nil {
		return nil, err
	}
	custom, err := readCustomCSS(req.CSSPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(req.Input) // #nosec G304 -- path named by the user
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadSource, req.Input, err)
	}
	src, err := pipeline.Preprocess(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Input, err)
	}
	timer.mark("read")

	fragment, err := c.markdown.ToHTML(ctx, src.Markdown)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	body, err := pipeline.RewriteRelativePaths(fragment.HTML, filepath.Dir(req.Input))
	if err != nil {
		return nil, fmt.Errorf("rewriting relative paths: %w", err)
	}
	timer.mark("markdown")

	css, err := c.stylesheet(theme, page, req, custom)
	if err != nil {
		return nil, err
	}

	title := src.Title
	if title == "" {
		title = fileutil.Stem(req.Input)
	}

	html, err := c.template.Render(ctx, pipeline.Page{Title: title, CSS: css, Body: body})
	if err != nil {
		return nil, err
	}
	if req.TOC {
		html = pipeline.InjectAfterBody(html, pipeline.BuildTOC(fragment.Headings, pipeline.TOCOptions{}))
	}
	timer.mark("compose")

	return &Document{
		HTML:      html,
		CSS:       css,
		Title:     title,
		Theme:     theme,
		Page:      page,
		Landscape: req.Landscape,
		Headings:  len(fragment.Headings),
	}, nil
}

func (c *Converter) stylesheet(theme Theme, page PageSettings, req Request, custom string) (string, error) {
	base, err := c.loader.LoadStyle(assets.BaseStyle)
	if err != nil {
		return "", fmt.Errorf("loading base stylesheet: %w", err)
	}
	themeCSS, err := c.loader.LoadStyle(theme.Name)
	if err != nil {
		return "", fmt.Errorf("loading theme %q: %w", theme.Name, err)
	}
	highlight, err := assets.HighlightCSS(theme.HighlightStyle)
	if err != nil {
		return "", err
	}

	parts := stylesheetParts{
		Page:      pageSetupCSS(page, req.orientation()),
		Base:      base,
		Theme:     themeCSS,
		Highlight: highlight,
		Custom:    custom,
	}
	if req.PageNumbers {
		parts.PageNumbers = pageNumberCSS
	}
	return composeStylesheet(parts), nil
}

// toPDF hands the document to the renderer through a temp file, removed
// afterwards.
func (c *Converter) toPDF(ctx context.Context, doc *Document) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(doc.HTML, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderPDF(ctx, tmpPath, printOptionsFor(doc))
}

// checkSource verifies the input is an existing regular file.
func checkSource(path string) error {
	if path == "" {
		return fmt.Errorf("%w: no input path given", ErrSourceNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			hint := ""
			if !filepath.IsAbs(path) {
				hint = hints.ForSourceNotFound()
			}
			return fmt.Errorf("%w: %s%s", ErrSourceNotFound, path, hint)
		}
		return fmt.Errorf("%w: %s: %v", ErrReadSource, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}
	return nil
}

// readCustomCSS loads the user stylesheet. Only the path is checked here;
// the content goes to the renderer untouched.
func readCustomCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path named by the user
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadCSS, path, err)
	}
	return string(data), nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

type stageTimer struct {
	stages []Stage
	start  time.Time
}

func newStageTimer() *stageTimer {
	return &stageTimer{start: time.Now()}
}

func (t *stageTimer) mark(name string) {
	now := time.Now()
	t.stages = append(t.stages, Stage{Name: name, Duration: now.Sub(t.start)})
	t.start = now
}
