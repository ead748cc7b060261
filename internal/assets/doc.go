// Package assets provides the stylesheets, HTML template and syntax
// highlighting CSS compiled into the binary.
//
// Layout of the embedded tree:
//
//	styles/
//	├── base.css        # rules shared by every theme (admonitions, TOC, footnotes)
//	├── default.css
//	├── github.css
//	└── academic.css
//	templates/
//	└── document.html   # html/template wrapping the rendered body
//
// Asset names are validated before lookup so a theme name taken from the
// command line can never select a file outside the embedded tree.
package assets
