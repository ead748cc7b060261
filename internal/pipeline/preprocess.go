package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/paperdown/mdpdf/internal/yamlutil"
)

// ErrFrontMatter indicates the leading YAML block could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// DefaultImageAlt replaces empty image alt text.
const DefaultImageAlt = "Image"

var (
	crlfOrCR      = regexp.MustCompile(`\r\n?`)
	emptyImageAlt = regexp.MustCompile(`!\[\]\(([^)]+)\)`)
)

// Source is Markdown ready for conversion.
type Source struct {
	Markdown []byte
	Title    string // from front matter, empty if absent
}

type frontMatter struct {
	Title string `yaml:"title"`
}

// Preprocess normalizes raw Markdown before conversion: CRLF and CR become
// LF, a leading front matter block is removed and its title kept, and images
// with empty alt text get DefaultImageAlt.
func Preprocess(ctx context.Context, raw []byte) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := crlfOrCR.ReplaceAllString(string(raw), "\n")
	content = strings.TrimPrefix(content, "\ufeff")

	meta, body, err := yamlutil.SplitFrontMatter([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	src := &Source{}
	if meta != nil {
		var fm frontMatter
		err := yamlutil.Unmarshal(meta, &fm)
		switch {
		case errors.Is(err, yamlutil.ErrEmptyInput):
		case err != nil:
			return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		default:
			src.Title = strings.TrimSpace(fm.Title)
		}
	}

	src.Markdown = emptyImageAlt.ReplaceAll(body, []byte("!["+DefaultImageAlt+"]($1)"))
	return src, nil
}
