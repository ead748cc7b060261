package mdpdf

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// minimalPDF builds a structurally valid PDF with the given number of empty
// letter-size pages. Offsets in the xref table are computed, not hardcoded.
func minimalPDF(pages int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	kids := ""
	for i := range pages {
		kids += fmt.Sprintf("%d 0 R ", i+3)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pages))
	for range pages {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func TestInspectPDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []byte
		wantPages int
		wantErr   error
	}{
		{"one page", minimalPDF(1), 1, nil},
		{"three pages", minimalPDF(3), 3, nil},
		{"empty", nil, 0, ErrInvalidPDF},
		{"garbage", []byte("this is not a PDF at all"), 0, ErrInvalidPDF},
		{"truncated header", []byte("%PDF-1.4\n"), 0, ErrInvalidPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pages, err := inspectPDF(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("inspectPDF() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("inspectPDF() unexpected error: %v", err)
			}
			if pages != tt.wantPages {
				t.Errorf("pages = %d, want %d", pages, tt.wantPages)
			}
		})
	}
}
