package mdpdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Inspection only; pdfcpu must not create ~/.config/pdfcpu.
	api.DisableConfigDir()
}

// inspectPDF parses data with pdfcpu and returns its page count. A document
// pdfcpu cannot read, or one without pages, is rejected.
func inspectPDF(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty output", ErrInvalidPDF)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("%w: counting pages: %v", ErrInvalidPDF, err)
	}
	if ctx.PageCount < 1 {
		return 0, fmt.Errorf("%w: no pages", ErrInvalidPDF)
	}
	return ctx.PageCount, nil
}
