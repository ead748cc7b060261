package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/paperdown/mdpdf/internal/config"
)

const envPrefix = "MDPDF_"

// envConfig holds overrides read from MDPDF_* variables. They sit between
// command-line flags and the config file in precedence.
type envConfig struct {
	ConfigPath string        // MDPDF_CONFIG: config file name or path
	Theme      string        // MDPDF_THEME
	CSS        string        // MDPDF_CSS: custom stylesheet path
	Timeout    time.Duration // MDPDF_TIMEOUT
	PageSize   string        // MDPDF_PAGE_SIZE
}

var knownEnvVars = map[string]bool{
	"MDPDF_CONFIG":    true,
	"MDPDF_THEME":     true,
	"MDPDF_CSS":       true,
	"MDPDF_TIMEOUT":   true,
	"MDPDF_PAGE_SIZE": true,
}

// loadEnvConfig reads the MDPDF_* variables. An unparsable or non-positive
// MDPDF_TIMEOUT is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDPDF_CONFIG"),
		Theme:      os.Getenv("MDPDF_THEME"),
		CSS:        os.Getenv("MDPDF_CSS"),
		PageSize:   os.Getenv("MDPDF_PAGE_SIZE"),
	}

	if timeout := os.Getenv("MDPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// warnUnknownEnvVars reports MDPDF_* names that are not recognized, which
// are almost always typos.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overlays environment values on the file configuration.
// Flags are applied afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Theme != "" {
		cfg.Theme = env.Theme
	}
	if env.CSS != "" {
		cfg.CSS = env.CSS
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout.String()
	}
}
