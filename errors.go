package mdpdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors, detected before anything is rendered.
	ErrSourceNotFound  = errors.New("source file not found")
	ErrReadSource      = errors.New("failed to read source file")
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrReadCSS         = errors.New("failed to read custom CSS")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Pipeline errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrWriteHTML      = errors.New("failed to write HTML copy")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Output errors.
	ErrInvalidPDF  = errors.New("renderer produced an invalid PDF")
	ErrWriteOutput = errors.New("failed to write output file")
)
