package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/paperdown/mdpdf"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

// pdfRenderer stands in for Chrome and returns a small but valid PDF, so the
// real converter (including the pdfcpu check) runs end to end.
type pdfRenderer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *pdfRenderer) RenderPDF(_ context.Context, _ string, _ mdpdf.PrintOptions) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return minimalPDF(), nil
}

func (r *pdfRenderer) Close() error { return nil }

// recordingConverter captures the request without converting anything.
type recordingConverter struct {
	req    mdpdf.Request
	called bool
	closed bool
	err    error
}

func (c *recordingConverter) Convert(_ context.Context, req mdpdf.Request) (*mdpdf.Result, error) {
	c.called = true
	c.req = req
	if c.err != nil {
		return nil, c.err
	}
	return &mdpdf.Result{
		Output: mdpdf.DefaultOutputPath(req.Input),
		Size:   2048,
		Pages:  2,
		Stages: []mdpdf.Stage{{Name: "read", Duration: time.Millisecond}},
	}, nil
}

func (c *recordingConverter) Close() error {
	c.closed = true
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func minimalPDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	for _, body := range []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>",
	} {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

// testEnv returns an Environment backed by the real converter and r.
func testEnv(r mdpdf.Renderer) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
		NewConverter: func(opts ...mdpdf.Option) (Converter, error) {
			return mdpdf.NewConverter(append(opts, mdpdf.WithRenderer(r))...)
		},
	}
	return env, &stdout, &stderr
}

// recordingEnv returns an Environment whose converter only records.
func recordingEnv(conv *recordingConverter) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
		NewConverter: func(...mdpdf.Option) (Converter, error) {
			return conv, nil
		},
	}
	return env, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
