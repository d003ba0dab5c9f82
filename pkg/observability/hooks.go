// Package observability provides hooks for logging and instrumenting
// dependency-graph loading and version resolution.
//
// Library packages emit events through the registered hooks; the command
// line registers implementations at startup. The defaults are no-ops, so
// libraries never depend on a particular logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetResolveHooks(&myResolveHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Graph().OnLoadStart(ctx, "cargo-metadata", path)
//	// ... load ...
//	observability.Graph().OnLoadComplete(ctx, "cargo-metadata", path, nodeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from dependency graph loaders.
type GraphHooks interface {
	// OnLoadStart records the start of a graph load from source (a manifest
	// or lockfile path, empty for the working directory).
	OnLoadStart(ctx context.Context, loader, source string)

	// OnLoadComplete records the end of a graph load. packages is the number
	// of packages in the graph, zero when err is non-nil.
	OnLoadComplete(ctx context.Context, loader, source string, packages int, duration time.Duration, err error)
}

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from version resolution.
type ResolveHooks interface {
	// OnResolve records the outcome of resolving a service's crate version.
	// matched is false when the fallback version was used.
	OnResolve(ctx context.Context, crate, version string, matched bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnLoadStart(context.Context, string, string) {}
func (NoopGraphHooks) OnLoadComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolve(context.Context, string, string, bool) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks   GraphHooks   = NoopGraphHooks{}
	resolveHooks ResolveHooks = NoopResolveHooks{}
	hooksMu      sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any graph is loaded.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetResolveHooks registers custom resolve hooks.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	resolveHooks = NoopResolveHooks{}
}
