package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths resolves relative img[src] and a[href] values in an
// HTML body fragment against sourceDir and replaces them with file:// URLs.
// The browser loads the document from a temp file, so without this a
// relative image next to the Markdown source would not be found.
//
// URLs with a scheme or host, fragment-only links and absolute paths are
// left alone. Media elements, srcset and CSS url() are not rewritten.
// An empty sourceDir returns the fragment unchanged.
func RewriteRelativePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" || fragment == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteNode(n, absSourceDir)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", sourceDir)
		case atom.A:
			rewriteAttr(n, "href", sourceDir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, sourceDir)
	}
}

func rewriteAttr(n *html.Node, key, sourceDir string) {
	for i, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		if resolved, ok := resolveRelative(attr.Val, sourceDir); ok {
			n.Attr[i].Val = resolved
		}
	}
}

// resolveRelative returns the file:// URL for a relative reference, keeping
// its query and fragment. Goldmark percent-encodes link destinations, so the path is
// decoded before joining.
func resolveRelative(ref, sourceDir string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}

	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	if filepath.IsAbs(u.Path) || strings.HasPrefix(u.Path, "/") {
		return "", false
	}

	abs := filepath.Join(sourceDir, filepath.FromSlash(u.Path))
	return fileURL(abs, u.RawQuery, u.Fragment), true
}

// fileURL converts an absolute OS path to a file:// URL. Windows drive paths
// get the leading slash file URLs require.
func fileURL(absPath, rawQuery, fragment string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: rawQuery, Fragment: fragment}
	return u.String()
}
