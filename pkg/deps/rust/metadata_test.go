package rust

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/335g/clidoc/pkg/deps"
	clierrors "github.com/335g/clidoc/pkg/errors"
)

const metadataFixture = `{
  "packages": [
    {"id": "path+file:///work/app#0.1.0", "name": "app", "version": "0.1.0", "source": null},
    {"id": "registry+https://github.com/rust-lang/crates.io-index#aws-sdk-lambda@1.68.0", "name": "aws-sdk-lambda", "version": "1.68.0", "source": "registry+https://github.com/rust-lang/crates.io-index"},
    {"id": "registry+https://github.com/rust-lang/crates.io-index#aws-config@1.5.10", "name": "aws-config", "version": "1.5.10", "source": "registry+https://github.com/rust-lang/crates.io-index"}
  ],
  "workspace_members": ["path+file:///work/app#0.1.0"],
  "workspace_root": "/work/app",
  "resolve": {
    "nodes": [
      {"id": "path+file:///work/app#0.1.0", "dependencies": [
        "registry+https://github.com/rust-lang/crates.io-index#aws-sdk-lambda@1.68.0",
        "registry+https://github.com/rust-lang/crates.io-index#aws-config@1.5.10"
      ]},
      {"id": "registry+https://github.com/rust-lang/crates.io-index#aws-sdk-lambda@1.68.0", "dependencies": []},
      {"id": "registry+https://github.com/rust-lang/crates.io-index#aws-config@1.5.10", "dependencies": []}
    ],
    "root": "path+file:///work/app#0.1.0"
  },
  "version": 1
}`

type fakeRunner struct {
	out  []byte
	err  error
	name string
	args []string
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

func TestMetadataParse(t *testing.T) {
	fake := &fakeRunner{out: []byte(metadataFixture)}
	res, err := NewMetadata(fake.run).Parse(context.Background(), "", deps.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if fake.name != deps.DefaultCargo {
		t.Errorf("ran %q, want %q", fake.name, deps.DefaultCargo)
	}
	if res.Type != "cargo-metadata" || !res.IncludesTransitive {
		t.Errorf("result = %q transitive=%v", res.Type, res.IncludesTransitive)
	}
	if res.RootPackage != "path+file:///work/app#0.1.0" {
		t.Errorf("RootPackage = %q", res.RootPackage)
	}

	ids := res.PackageIDs()
	if len(ids) != 3 {
		t.Fatalf("PackageIDs() = %v, want 3 ids", ids)
	}
	if ids[1] != "registry+https://github.com/rust-lang/crates.io-index#aws-sdk-lambda@1.68.0" {
		t.Errorf("ids[1] = %q", ids[1])
	}
	if got := res.Graph.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}

	root, _ := res.Graph.Node(res.RootPackage)
	if root.Meta["workspace_member"] != true {
		t.Error("root package not marked as workspace member")
	}
}

func TestMetadataArgs(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "Cargo.toml")
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"app\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		opts deps.Options
		want []string
	}{
		{"default", "", deps.Options{}, []string{"metadata", "--format-version", "1"}},
		{"manifest", manifest, deps.Options{}, []string{"metadata", "--format-version", "1", "--manifest-path", manifest}},
		{"offline locked", "", deps.Options{Offline: true, Locked: true}, []string{"metadata", "--format-version", "1", "--offline", "--locked"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRunner{out: []byte(metadataFixture)}
			if _, err := NewMetadata(fake.run).Parse(context.Background(), tt.path, tt.opts); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !slices.Equal(fake.args, tt.want) {
				t.Errorf("args = %v, want %v", fake.args, tt.want)
			}
		})
	}
}

func TestMetadataCustomCargo(t *testing.T) {
	fake := &fakeRunner{out: []byte(metadataFixture)}
	if _, err := NewMetadata(fake.run).Parse(context.Background(), "", deps.Options{Cargo: "/opt/cargo"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fake.name != "/opt/cargo" {
		t.Errorf("ran %q, want /opt/cargo", fake.name)
	}
}

func TestMetadataErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		out  string
		err  error
	}{
		{"runner fails", "", "", errors.New("could not find Cargo.toml")},
		{"invalid json", "", "{not json", nil},
		{"missing manifest", filepath.Join(t.TempDir(), "Cargo.toml"), metadataFixture, nil},
		{"duplicate package", "", `{"packages":[{"id":"a"},{"id":"a"}]}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRunner{out: []byte(tt.out), err: tt.err}
			_, err := NewMetadata(fake.run).Parse(context.Background(), tt.path, deps.Options{})
			if !clierrors.Is(err, clierrors.ErrCodeGraphUnavailable) {
				t.Fatalf("Parse error = %v, want GRAPH_UNAVAILABLE", err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("error %v does not wrap runner error", err)
			}
		})
	}
}

func TestMetadataCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fake := &fakeRunner{err: errors.New("signal: killed")}

	_, err := NewMetadata(fake.run).Parse(ctx, "", deps.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Parse error = %v, want context.Canceled", err)
	}
}

func TestMetadataSupports(t *testing.T) {
	m := NewMetadata(nil)
	for name, want := range map[string]bool{
		"Cargo.toml":   true,
		"cargo.toml":   true,
		"Cargo.lock":   false,
		"package.json": false,
	} {
		if got := m.Supports(name); got != want {
			t.Errorf("Supports(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParsersDetection(t *testing.T) {
	parsers := Parsers()

	p, err := deps.DetectManifest("", parsers...)
	if err != nil || p.Type() != "cargo-metadata" {
		t.Errorf("DetectManifest(\"\") = %v, %v", p, err)
	}
	p, err = deps.DetectManifest("/work/app/Cargo.lock", parsers...)
	if err != nil || p.Type() != "cargo-lock" {
		t.Errorf("DetectManifest(Cargo.lock) = %v, %v", p, err)
	}
	if _, err := deps.DetectManifest("/work/app/go.mod", parsers...); !clierrors.Is(err, clierrors.ErrCodeInvalidManifest) {
		t.Errorf("DetectManifest(go.mod) error = %v, want INVALID_MANIFEST", err)
	}
}
