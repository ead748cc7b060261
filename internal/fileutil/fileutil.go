// Package fileutil provides file and path helpers shared by the library and CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file helpers.
var (
	ErrExtensionEmpty   = errors.New("extension cannot be empty")
	ErrExtensionInvalid = errors.New("extension contains path separator or null byte")
)

// FilePerm is the mode for files written on the user's behalf.
const FilePerm = 0o644

// WriteTempFile writes content to a new temporary file with the given
// extension. The returned cleanup removes the file and is safe to call once.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp("", "mdpdf-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	return path, cleanup, nil
}

// ValidateExtension rejects extensions that could escape the temp directory.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionInvalid
	}
	return nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReplaceExt returns path with its extension replaced by ext (which includes
// the dot). A path without an extension gets ext appended.
//
//	ReplaceExt("notes/readme.md", ".pdf") == "notes/readme.pdf"
//	ReplaceExt("CHANGELOG", ".pdf")       == "CHANGELOG.pdf"
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WriteFile writes data to path. If the write fails part way, the partial
// file is removed so a failed run leaves nothing behind.
func WriteFile(path string, data []byte) error {
	// #nosec G306 -- output documents are meant to be readable
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
