package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/paperdown/mdpdf"
)

// Converter is the part of *mdpdf.Converter the CLI uses.
type Converter interface {
	Convert(ctx context.Context, req mdpdf.Request) (*mdpdf.Result, error)
	Close() error
}

var _ Converter = (*mdpdf.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(opts ...mdpdf.Option) (Converter, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewConverter: func(opts ...mdpdf.Option) (Converter, error) {
			return mdpdf.NewConverter(opts...)
		},
	}
}
