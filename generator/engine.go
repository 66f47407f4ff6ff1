// Package generator holds the configuration handed to a generation engine and the
// engines shipped with the tool.
package generator

import "context"

// Engine turns a set of schema files into generated output.
type Engine interface {
	Generate(ctx context.Context, files []string, cfg Configuration) error
}

// EngineFunc adapts an ordinary function to the Engine interface.
type EngineFunc func(ctx context.Context, files []string, cfg Configuration) error

// Generate calls f(ctx, files, cfg).
func (f EngineFunc) Generate(ctx context.Context, files []string, cfg Configuration) error {
	return f(ctx, files, cfg)
}
