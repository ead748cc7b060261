package main

import (
	"os"

	"github.com/go-rod/rod/lib/launcher"
)

// describeBrowser says which Chrome binary the renderer will launch.
func describeBrowser() string {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		return bin + " (ROD_BROWSER_BIN)"
	}
	if path, found := launcher.LookPath(); found {
		return path
	}
	return "none found locally, a Chromium build will be downloaded"
}
