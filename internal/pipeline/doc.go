// Package pipeline turns Markdown source into a complete HTML document.
//
// Stages, in order:
//   - Preprocess: line ending normalization, front matter, image alt text
//   - GoldmarkConverter: Markdown to an HTML fragment plus its headings
//   - RewriteRelativePaths: relative img/a targets to file:// URLs
//   - BuildTOC / InjectAfterBody: optional table of contents
//   - DocumentTemplate: wraps the fragment with title and stylesheet
//
// PDF generation lives in the root mdpdf package. Nothing here touches the
// browser.
package pipeline
