package mdpdf

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// paperSize is width x height in inches, portrait.
type paperSize struct {
	width, height float64
}

var paperSizes = map[string]paperSize{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSizes returns the accepted page size names.
func PageSizes() []string {
	return []string{PageSizeLetter, PageSizeA4, PageSizeLegal}
}

// PageSettings configures the printed page. Zero values select defaults:
// letter paper and the theme's margin.
type PageSettings struct {
	Size   string  // "letter", "a4", "legal" (case-insensitive)
	Margin float64 // inches, applied to all sides
}

// normalize returns validated settings with defaults filled in.
func (p PageSettings) normalize(themeMargin float64) (PageSettings, error) {
	out := PageSettings{
		Size:   strings.ToLower(strings.TrimSpace(p.Size)),
		Margin: p.Margin,
	}
	if out.Size == "" {
		out.Size = PageSizeLetter
	}
	if _, ok := paperSizes[out.Size]; !ok {
		return PageSettings{}, fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, p.Size)
	}
	if out.Margin == 0 {
		out.Margin = themeMargin
	}
	if out.Margin < MinMargin || out.Margin > MaxMargin {
		return PageSettings{}, fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, out.Margin, MinMargin, MaxMargin)
	}
	return out, nil
}

// Request describes one conversion. It is a plain value; the converter
// never modifies it.
type Request struct {
	Input       string // Markdown source path (required)
	Output      string // PDF path, empty = DefaultOutputPath(Input)
	Theme       string // theme name, empty = DefaultTheme
	CSSPath     string // optional stylesheet applied after the theme
	TOC         bool
	PageNumbers bool
	Landscape   bool
	Page        PageSettings
	HTMLPath    string // if set, the composed HTML is also written here
}

func (r Request) orientation() string {
	if r.Landscape {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// Document is the composed HTML handed to the PDF backend.
type Document struct {
	HTML      string
	CSS       string // stylesheet embedded in HTML, kept for inspection
	Title     string
	Theme     Theme
	Page      PageSettings // resolved page settings
	Landscape bool
	Headings  int // number of headings found in the source
}

// Stage records how long one pipeline stage took.
type Stage struct {
	Name     string
	Duration time.Duration
}

// Result is the outcome of a successful conversion.
type Result struct {
	Output   string // path the PDF was written to
	Size     int    // PDF size in bytes
	Pages    int
	Document *Document
	Stages   []Stage
}

// Option configures a Converter.
type Option func(*Converter)

type converterConfig struct {
	timeout time.Duration
}

// DefaultTimeout bounds page load and printing when the context has no
// deadline.
const DefaultTimeout = 30 * time.Second

// WithTimeout sets the render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithRenderer replaces the headless Chrome backend. Used by tests and by
// callers that manage their own browser.
func WithRenderer(r Renderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}
