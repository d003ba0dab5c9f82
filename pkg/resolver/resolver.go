package resolver

import (
	"context"

	"github.com/335g/clidoc/pkg/catalog"
	"github.com/335g/clidoc/pkg/matcher"
	"github.com/335g/clidoc/pkg/observability"
)

// Graph is a resolved dependency graph seen as a set of package identifiers.
// The order of PackageIDs is whatever the graph produces; Resolve does not
// sort it.
type Graph interface {
	PackageIDs() []string
}

// Loader builds the dependency graph of the current project.
type Loader interface {
	Load(ctx context.Context) (Graph, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) (Graph, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) (Graph, error) { return f(ctx) }

// Resolve returns the installed version of svc's client crate in g, or
// Latest if g has no matching package. The first match in g's enumeration
// order wins. Resolve only reads g and makes a single pass over it.
func Resolve(svc catalog.Service, g Graph) Version {
	v, _ := resolve(svc, g)
	return v
}

// Match is the package a resolution settled on.
type Match struct {
	ID      string // Package identifier; empty when nothing matched
	Version Version
}

// Locate is Resolve that also reports which package identifier matched.
func Locate(svc catalog.Service, g Graph) Match {
	if g == nil {
		return Match{}
	}
	p := matcher.Compile(svc.Name())
	for _, id := range g.PackageIDs() {
		if v, ok := p.Match(id); ok {
			return Match{ID: id, Version: Exact(v)}
		}
	}
	return Match{}
}

func resolve(svc catalog.Service, g Graph) (Version, bool) {
	m := Locate(svc, g)
	return m.Version, m.ID != ""
}

// ResolveFrom loads the dependency graph with l and resolves svc against it.
// If loading fails, the loader's error is returned as is and the Version is
// Latest; callers must treat that error as fatal rather than fall back.
func ResolveFrom(ctx context.Context, svc catalog.Service, l Loader) (Version, error) {
	g, err := l.Load(ctx)
	if err != nil {
		return Version{}, err
	}
	v, matched := resolve(svc, g)
	observability.Resolve().OnResolve(ctx, svc.Crate(), v.String(), matched)
	return v, nil
}
