package rust

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/335g/clidoc/pkg/dag"
	"github.com/335g/clidoc/pkg/deps"
	"github.com/335g/clidoc/pkg/errors"
)

// LockfileName is the name of cargo's lockfile.
const LockfileName = "Cargo.lock"

// CargoLock builds the dependency graph from a Cargo.lock without running
// cargo. The lockfile holds the full resolution of a workspace.
type CargoLock struct{}

func (c *CargoLock) Type() string              { return "cargo-lock" }
func (c *CargoLock) IncludesTransitive() bool  { return true }
func (c *CargoLock) Supports(name string) bool { return strings.EqualFold(name, "cargo.lock") }

// Parse reads the lockfile at path. An empty path searches the working
// directory and its parents.
func (c *CargoLock) Parse(ctx context.Context, path string, opts deps.Options) (*deps.ManifestResult, error) {
	return observe(ctx, c.Type(), path, func() (*deps.ManifestResult, error) {
		return c.parse(path, opts.WithDefaults())
	})
}

func (c *CargoLock) parse(path string, opts deps.Options) (*deps.ManifestResult, error) {
	if path == "" {
		found, err := FindLockfile(".")
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGraphUnavailable, err, "read %s", LockfileName)
	}

	var lock cargoLockFile
	if _, err := toml.Decode(string(data), &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGraphUnavailable, err, "parse %s", path)
	}

	g := lockGraph(lock, opts)
	opts.Logger("%s (v%d): %d packages, %d edges", path, lock.Version, g.NodeCount(), g.EdgeCount())

	return &deps.ManifestResult{
		Graph:              g,
		Type:               c.Type(),
		IncludesTransitive: true,
		RootPackage:        lock.root(),
	}, nil
}

// FindLockfile returns the Cargo.lock governing start, a directory or a file
// inside one, by searching start and its parents. Workspace members share
// the lockfile at the workspace root.
func FindLockfile(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeGraphUnavailable, err, "resolve %s", start)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, LockfileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.ErrCodeGraphUnavailable, "no %s found in %s or any parent directory", LockfileName, start)
		}
		dir = parent
	}
}

func lockGraph(lock cargoLockFile, opts deps.Options) *dag.DAG {
	g := dag.New(dag.Metadata{"lockfile_version": lock.Version})

	byName := make(map[string][]lockPackage)
	for _, p := range lock.Package {
		meta := dag.Metadata{"name": p.Name, "version": p.Version}
		if p.Source != "" {
			meta["source"] = p.Source
		} else {
			meta["workspace_member"] = true
		}
		if err := g.AddNode(dag.Node{ID: p.id(), Meta: meta}); err != nil {
			opts.Logger("skipping %s: %v", p.id(), err)
			continue
		}
		byName[p.Name] = append(byName[p.Name], p)
	}

	for _, p := range lock.Package {
		for _, entry := range p.Dependencies {
			dep, ok := lookupDependency(byName, entry)
			if !ok {
				opts.Logger("%s: unresolved dependency %q", p.id(), entry)
				continue
			}
			_ = g.AddEdge(dag.Edge{From: p.id(), To: dep.id()})
		}
	}
	return g
}

// lookupDependency resolves a lockfile dependency entry. Entries name a
// package as "name", "name version" or "name version (source)", with only
// as much detail as needed to be unambiguous.
func lookupDependency(byName map[string][]lockPackage, entry string) (lockPackage, bool) {
	fields := strings.Fields(entry)
	if len(fields) == 0 {
		return lockPackage{}, false
	}
	var version, source string
	if len(fields) > 1 {
		version = fields[1]
	}
	if len(fields) > 2 {
		source = strings.TrimSuffix(strings.TrimPrefix(fields[2], "("), ")")
	}

	for _, p := range byName[fields[0]] {
		if version != "" && p.Version != version {
			continue
		}
		if source != "" && p.Source != source {
			continue
		}
		return p, true
	}
	return lockPackage{}, false
}

type cargoLockFile struct {
	Version int           `toml:"version"`
	Package []lockPackage `toml:"package"`
}

// root returns the only local package, if there is exactly one. The
// lockfile does not distinguish workspace members from path dependencies,
// so every local package counts as a member.
func (l cargoLockFile) root() string {
	var root string
	for _, p := range l.Package {
		if p.Source != "" {
			continue
		}
		if root != "" {
			return ""
		}
		root = p.id()
	}
	return root
}

type lockPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}

// id returns the package ID cargo would assign: "<source>#<name>@<version>"
// for registry and git packages, "<name>@<version>" for local ones. A git
// source's "#<commit>" fragment is dropped, as cargo does.
func (p lockPackage) id() string {
	if p.Source == "" {
		return fmt.Sprintf("%s@%s", p.Name, p.Version)
	}
	source, _, _ := strings.Cut(p.Source, "#")
	return fmt.Sprintf("%s#%s@%s", source, p.Name, p.Version)
}
