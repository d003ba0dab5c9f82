package rust

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/335g/clidoc/pkg/dag"
	"github.com/335g/clidoc/pkg/deps"
	"github.com/335g/clidoc/pkg/errors"
)

// Runner runs an external command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Metadata builds the dependency graph from "cargo metadata".
type Metadata struct {
	run Runner
}

// NewMetadata returns a Metadata parser that runs cargo through run.
// A nil run executes the command with os/exec.
func NewMetadata(run Runner) *Metadata {
	if run == nil {
		run = execRunner
	}
	return &Metadata{run: run}
}

func (m *Metadata) Type() string              { return "cargo-metadata" }
func (m *Metadata) IncludesTransitive() bool  { return true }
func (m *Metadata) Supports(name string) bool { return strings.EqualFold(name, "cargo.toml") }

// Parse runs cargo metadata for the manifest at path, or for the manifest
// cargo finds from the working directory when path is empty.
func (m *Metadata) Parse(ctx context.Context, path string, opts deps.Options) (*deps.ManifestResult, error) {
	return observe(ctx, m.Type(), path, func() (*deps.ManifestResult, error) {
		return m.parse(ctx, path, opts.WithDefaults())
	})
}

func (m *Metadata) parse(ctx context.Context, path string, opts deps.Options) (*deps.ManifestResult, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeGraphUnavailable, err, "manifest not found")
		}
	}

	args := metadataArgs(path, opts)
	opts.Logger("running %s %s", opts.Cargo, strings.Join(args, " "))

	out, err := m.run(ctx, opts.Cargo, args...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeGraphUnavailable, err, "cargo metadata failed")
	}

	var meta cargoMetadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGraphUnavailable, err, "decode cargo metadata")
	}

	g, err := meta.graph()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGraphUnavailable, err, "build dependency graph")
	}
	if err := g.Validate(); err != nil {
		opts.Logger("dependency graph: %v", err)
	}
	opts.Logger("cargo metadata: %d packages, %d edges", g.NodeCount(), g.EdgeCount())

	return &deps.ManifestResult{
		Graph:              g,
		Type:               m.Type(),
		IncludesTransitive: true,
		RootPackage:        meta.root(),
	}, nil
}

func metadataArgs(path string, opts deps.Options) []string {
	args := []string{"metadata", "--format-version", "1"}
	if path != "" {
		args = append(args, "--manifest-path", path)
	}
	if opts.Offline {
		args = append(args, "--offline")
	}
	if opts.Locked {
		args = append(args, "--locked")
	}
	return args
}

// cargoMetadata is the subset of "cargo metadata --format-version 1" output
// used to build the graph.
type cargoMetadata struct {
	Packages []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Version string `json:"version"`
		Source  string `json:"source"`
	} `json:"packages"`
	WorkspaceMembers []string `json:"workspace_members"`
	WorkspaceRoot    string   `json:"workspace_root"`
	Resolve          *struct {
		Nodes []struct {
			ID           string   `json:"id"`
			Dependencies []string `json:"dependencies"`
		} `json:"nodes"`
		Root string `json:"root"`
	} `json:"resolve"`
}

func (m *cargoMetadata) graph() (*dag.DAG, error) {
	g := dag.New(dag.Metadata{"workspace_root": m.WorkspaceRoot})

	members := make(map[string]bool, len(m.WorkspaceMembers))
	for _, id := range m.WorkspaceMembers {
		members[id] = true
	}

	for _, p := range m.Packages {
		meta := dag.Metadata{"name": p.Name, "version": p.Version}
		if p.Source != "" {
			meta["source"] = p.Source
		}
		if members[p.ID] {
			meta["workspace_member"] = true
		}
		if err := g.AddNode(dag.Node{ID: p.ID, Meta: meta}); err != nil {
			return nil, fmt.Errorf("package %q: %w", p.ID, err)
		}
	}

	if m.Resolve == nil {
		return g, nil
	}
	for _, n := range m.Resolve.Nodes {
		for _, dep := range n.Dependencies {
			if err := g.AddEdge(dag.Edge{From: n.ID, To: dep}); err != nil {
				return nil, fmt.Errorf("dependency %s -> %s: %w", n.ID, dep, err)
			}
		}
	}
	return g, nil
}

// root returns the resolved root package, or the only workspace member.
func (m *cargoMetadata) root() string {
	if m.Resolve != nil && m.Resolve.Root != "" {
		return m.Resolve.Root
	}
	if len(m.WorkspaceMembers) == 1 {
		return m.WorkspaceMembers[0]
	}
	return ""
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}
