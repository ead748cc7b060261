// Package yamlutil wraps YAML decoding so the rest of the module never imports
// the YAML library directly. Both the configuration file and document front
// matter go through here.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input (1 MiB) to keep a hostile file from
// exhausting memory.
var MaxInputSize = 1 << 20

// Sentinel errors for YAML decoding.
var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrUnclosedFront  = errors.New("yamlutil: front matter is not closed")
)

const frontMatterDelim = "---"

func checkInput(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown keys.
func Unmarshal(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects unknown keys.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// rest of a document. Line endings must already be normalized to \n.
// When the document has no front matter, meta is nil and body is src.
func SplitFrontMatter(src []byte) (meta, body []byte, err error) {
	if !bytes.HasPrefix(src, []byte(frontMatterDelim+"\n")) {
		return nil, src, nil
	}

	rest := src[len(frontMatterDelim)+1:]
	offset := 0
	for offset <= len(rest) {
		end := bytes.IndexByte(rest[offset:], '\n')
		var line []byte
		if end < 0 {
			line = rest[offset:]
		} else {
			line = rest[offset : offset+end]
		}

		if string(bytes.TrimRight(line, " \t")) == frontMatterDelim {
			meta = rest[:offset]
			if end < 0 {
				return meta, nil, nil
			}
			return meta, rest[offset+end+1:], nil
		}

		if end < 0 {
			break
		}
		offset += end + 1
	}

	return nil, nil, ErrUnclosedFront
}
