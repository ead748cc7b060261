// Package hints builds short, actionable suffixes for error messages.
// Every hint renders as "\n  hint: <text>" so the CLI can append it verbatim.
package hints

import (
	"os"
	"strings"

	"github.com/paperdown/mdpdf/internal/fileutil"
)

// IsInContainer reports whether the process runs inside Docker.
// Replaced in tests.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the rod environment variables that usually fix a
// browser launch failure in CI or containers.
func ForBrowserConnect() string {
	var parts []string

	inCI := os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" || os.Getenv("GITLAB_CI") != ""
	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		parts = append(parts, "set ROD_NO_SANDBOX=1 in Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to an installed Chrome/Chromium")
	}

	return format(strings.Join(parts, "; "))
}

// ForTimeout suggests raising the render timeout.
func ForTimeout() string {
	return format("large documents may need a longer --timeout (e.g. 2m)")
}

// ForUnknownTheme lists the themes that do exist.
func ForUnknownTheme(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available themes: " + strings.Join(available, ", "))
}

// ForSourceNotFound reminds the user where relative paths are resolved from.
func ForSourceNotFound() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return format("relative paths are resolved from " + wd)
}

// ForConfigNotFound points at the locations searched for a named config.
func ForConfigNotFound(searched []string) string {
	if len(searched) == 0 {
		return format("use --config /path/to/file.yaml")
	}
	return format("create one of: " + strings.Join(searched, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
