package mdpdf

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/paperdown/mdpdf/internal/hints"
	"github.com/paperdown/mdpdf/internal/process"
)

// Renderer prints an HTML file to PDF.
type Renderer interface {
	RenderPDF(ctx context.Context, htmlPath string, opts PrintOptions) ([]byte, error)
	Close() error
}

// PrintOptions carries page geometry to the renderer. The document's own
// @page rule normally wins; these values are the fallback.
type PrintOptions struct {
	PaperWidth  float64 // inches, portrait
	PaperHeight float64
	Margin      float64
	Landscape   bool
}

func printOptionsFor(doc *Document) PrintOptions {
	size := paperSizes[doc.Page.Size]
	return PrintOptions{
		PaperWidth:  size.width,
		PaperHeight: size.height,
		Margin:      doc.Page.Margin,
		Landscape:   doc.Landscape,
	}
}

// rodRenderer drives headless Chrome through go-rod. Rod downloads a
// Chromium build on first use unless ROD_BROWSER_BIN names one.
type rodRenderer struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser launches and connects on first use.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.kill(l)
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Close shuts the browser down and removes its profile directory.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.kill(r.launcher)
		r.launcher = nil
	}
	return err
}

func (r *rodRenderer) kill(l *launcher.Launcher) {
	process.KillTree(l.PID())
	l.Kill()
	l.Cleanup()
}

// RenderPDF opens htmlPath in a new tab, waits for it to load and prints it.
func (r *rodRenderer) RenderPDF(ctx context.Context, htmlPath string, opts PrintOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	target, err := fileURLFor(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func(p *rod.Page) { _ = p.Close() }(page)
	page = page.Context(ctx)

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForTimeout())
	}

	reader, err := page.PDF(buildPrintRequest(opts))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// buildPrintRequest maps PrintOptions to the DevTools print call. Page
// numbers come from the stylesheet, so Chrome's own header and footer stay
// off.
func buildPrintRequest(opts PrintOptions) *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		Landscape:         opts.Landscape,
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        floatPtr(opts.PaperWidth),
		PaperHeight:       floatPtr(opts.PaperHeight),
		MarginTop:         floatPtr(opts.Margin),
		MarginBottom:      floatPtr(opts.Margin),
		MarginLeft:        floatPtr(opts.Margin),
		MarginRight:       floatPtr(opts.Margin),
	}
}

func fileURLFor(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if p[0] != '/' {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}

func floatPtr(v float64) *float64 {
	return &v
}

var _ Renderer = (*rodRenderer)(nil)
