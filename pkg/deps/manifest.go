package deps

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/335g/clidoc/pkg/dag"
	"github.com/335g/clidoc/pkg/errors"
)

// ManifestParser reads dependency information from local manifest files.
type ManifestParser interface {
	// Parse reads the manifest at path and returns the dependency graph.
	// An empty path means the manifest in the working directory.
	Parse(ctx context.Context, path string, opts Options) (*ManifestResult, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "cargo-metadata").
	Type() string
	// IncludesTransitive reports whether the manifest contains the full
	// transitive closure (like lock files) or just direct dependencies.
	IncludesTransitive() bool
}

// ManifestResult holds the parsed dependency data from a manifest file.
type ManifestResult struct {
	Graph              *dag.DAG // One node per resolved package
	Type               string   // Parser type that produced this result
	IncludesTransitive bool     // Whether Graph includes transitive dependencies
	RootPackage        string   // ID of the root package, if determinable
}

// PackageIDs returns the identifier of every package in the graph, in the
// parser's order.
func (r *ManifestResult) PackageIDs() []string {
	if r == nil || r.Graph == nil {
		return nil
	}
	ids := make([]string, 0, r.Graph.NodeCount())
	for _, n := range r.Graph.Nodes() {
		ids = append(ids, n.ID)
	}
	return ids
}

// Roots returns the packages dependency chains start from: RootPackage
// first, when known, then every node marked as a workspace member.
func (r *ManifestResult) Roots() []string {
	if r == nil || r.Graph == nil {
		return nil
	}
	var roots []string
	if _, ok := r.Graph.Node(r.RootPackage); ok {
		roots = append(roots, r.RootPackage)
	}
	for _, n := range r.Graph.Nodes() {
		if member, _ := n.Meta["workspace_member"].(bool); member && n.ID != r.RootPackage {
			roots = append(roots, n.ID)
		}
	}
	return roots
}

// Direct reports whether a root package depends on id without an
// intermediate package.
func (r *ManifestResult) Direct(id string) bool {
	roots := r.Roots()
	if len(roots) == 0 {
		return false
	}
	for _, parent := range r.Graph.Parents(id) {
		if slices.Contains(roots, parent) {
			return true
		}
	}
	return false
}

// Path returns a shortest dependency chain from a root package to id, both
// ends included, or nil if no root reaches id.
func (r *ManifestResult) Path(id string) []string {
	roots := r.Roots()
	prev := make(map[string]string, len(roots))
	queue := make([]string, 0, len(roots))
	for _, root := range roots {
		prev[root] = ""
		queue = append(queue, root)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == id {
			var path []string
			for n := cur; n != ""; n = prev[n] {
				path = append(path, n)
			}
			slices.Reverse(path)
			return path
		}
		for _, child := range r.Graph.Children(cur) {
			if _, seen := prev[child]; !seen {
				prev[child] = cur
				queue = append(queue, child)
			}
		}
	}
	return nil
}

// DetectManifest finds a parser that supports the given file path.
// An empty path selects the first parser, which is expected to locate the
// manifest itself. Returns an INVALID_MANIFEST error if no parser matches.
func DetectManifest(path string, parsers ...ManifestParser) (ManifestParser, error) {
	if len(parsers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "no manifest parsers available")
	}
	if path == "" {
		return parsers[0], nil
	}
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "unsupported manifest: %s", name)
}
