package mdpdf

import (
	"fmt"
	"slices"
	"strings"

	"github.com/paperdown/mdpdf/internal/hints"
)

// DefaultTheme is used when a Request names no theme.
const DefaultTheme = "default"

// Theme is a bundled stylesheet and the settings that go with it.
type Theme struct {
	Name           string
	Description    string
	HighlightStyle string  // chroma style for code blocks
	Margin         float64 // default page margin in inches
}

// themes is the static registry. Each name has a matching stylesheet in
// internal/assets/styles.
var themes = []Theme{
	{
		Name:           "academic",
		Description:    "serif body, justified paragraphs, paper-like spacing",
		HighlightStyle: "bw",
		Margin:         1.0,
	},
	{
		Name:           "default",
		Description:    "clean sans-serif layout",
		HighlightStyle: "pygments",
		Margin:         0.75,
	},
	{
		Name:           "github",
		Description:    "GitHub-flavored look",
		HighlightStyle: "github",
		Margin:         0.75,
	},
}

// Themes returns the available theme names in sorted order.
func Themes() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	slices.Sort(names)
	return names
}

// ThemeList returns a copy of the registry, sorted by name.
func ThemeList() []Theme {
	list := slices.Clone(themes)
	slices.SortFunc(list, func(a, b Theme) int { return strings.Compare(a.Name, b.Name) })
	return list
}

// LookupTheme resolves a theme name. Matching is case-insensitive and an
// empty name selects DefaultTheme.
func LookupTheme(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultTheme
	}
	for _, t := range themes {
		if t.Name == key {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q%s", ErrUnknownTheme, name, hints.ForUnknownTheme(Themes()))
}
