package main

import (
	"context"
	"errors"
	"os"

	"github.com/paperdown/mdpdf"
	"github.com/paperdown/mdpdf/internal/config"
)

// Exit codes. 0=success, 1=general, 2=usage, then tool-specific codes.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Unexpected or library error
	ExitUsage   = 2 // Invalid flags, config, theme or page settings
	ExitIO      = 3 // Source not found, unreadable CSS, write failure
	ExitBrowser = 4 // Chrome failed to start, load or print
)

// exitCodeFor maps an error to an exit code. Errors must be wrapped with
// %w for the mapping to see them.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, mdpdf.ErrBrowserConnect) ||
		errors.Is(err, mdpdf.ErrPageCreate) ||
		errors.Is(err, mdpdf.ErrPageLoad) ||
		errors.Is(err, mdpdf.ErrPDFGeneration) ||
		errors.Is(err, mdpdf.ErrInvalidPDF) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	if errors.Is(err, mdpdf.ErrSourceNotFound) ||
		errors.Is(err, mdpdf.ErrReadSource) ||
		errors.Is(err, mdpdf.ErrReadCSS) ||
		errors.Is(err, mdpdf.ErrWriteOutput) ||
		errors.Is(err, mdpdf.ErrWriteHTML) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, mdpdf.ErrUnknownTheme) ||
		errors.Is(err, mdpdf.ErrInvalidPageSize) ||
		errors.Is(err, mdpdf.ErrInvalidMargin) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	return ExitGeneral
}
