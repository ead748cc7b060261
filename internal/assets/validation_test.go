package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "github", nil},
		{"hyphen", "my-theme", nil},
		{"underscore and digits", "theme_2", nil},
		{"empty", "", ErrInvalidAssetName},
		{"forward slash", "a/b", ErrInvalidAssetName},
		{"backslash", "a\\b", ErrInvalidAssetName},
		{"traversal", "../../etc/passwd", ErrInvalidAssetName},
		{"extension", "default.css", ErrInvalidAssetName},
		{"hidden file", ".hidden", ErrInvalidAssetName},
		{"windows absolute", "C:\\Windows", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
