package mdpdf

import "github.com/paperdown/mdpdf/internal/fileutil"

// DefaultOutputPath returns input with its extension replaced by ".pdf",
// in the same directory.
//
//	DefaultOutputPath("docs/guide.md") == "docs/guide.pdf"
//	DefaultOutputPath("README")        == "README.pdf"
func DefaultOutputPath(input string) string {
	return fileutil.ReplaceExt(input, ".pdf")
}
