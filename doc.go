// Package mdpdf converts Markdown files to styled PDF using goldmark for
// parsing, chroma for code highlighting and headless Chrome (go-rod) for
// layout and printing.
//
// # Quick Start
//
//	conv, err := mdpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdpdf.Request{
//	    Input: "report.md",
//	    Theme: "github",
//	    TOC:   true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output, result.Pages)
//
// # Pipeline
//
//  1. Check the source file, theme, page settings and custom CSS path
//  2. Preprocess (line endings, front matter, empty image alt text)
//  3. Convert with goldmark: GFM, footnotes, definition lists,
//     typographer, admonitions, highlighted code, heading IDs
//  4. Compose the stylesheet: @page setup, theme, highlight classes,
//     page numbers, custom CSS last
//  5. Wrap in the document template and insert the TOC
//  6. Print with headless Chrome, verify with pdfcpu, write the file
//
// Render stops after step 5 and returns the Document, which is handy for
// tests and for inspecting the HTML the browser will see.
//
// # Themes
//
// Three themes are built in: default, github and academic. See Themes and
// LookupTheme.
//
// # Browser
//
// Rod downloads a Chromium build on first use. Set ROD_BROWSER_BIN to use an
// installed browser, and ROD_NO_SANDBOX=1 inside containers.
package mdpdf
