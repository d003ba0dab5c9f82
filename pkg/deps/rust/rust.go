package rust

import (
	"context"
	"time"

	"github.com/335g/clidoc/pkg/deps"
	"github.com/335g/clidoc/pkg/observability"
)

// Parsers returns the cargo manifest parsers in detection order. The first
// one, which runs cargo metadata, is used when no manifest path is given.
func Parsers() []deps.ManifestParser {
	return []deps.ManifestParser{NewMetadata(nil), &CargoLock{}}
}

// observe reports a graph load to the registered observability hooks.
func observe(ctx context.Context, loader, source string, load func() (*deps.ManifestResult, error)) (*deps.ManifestResult, error) {
	hooks := observability.Graph()
	hooks.OnLoadStart(ctx, loader, source)
	start := time.Now()

	result, err := load()

	packages := 0
	if err == nil && result.Graph != nil {
		packages = result.Graph.NodeCount()
	}
	hooks.OnLoadComplete(ctx, loader, source, packages, time.Since(start), err)
	return result, err
}
