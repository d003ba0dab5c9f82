// Package pkg provides the libraries behind clidoc, a launcher for the
// docs.rs reference pages of AWS SDK for Rust service clients.
//
// # Overview
//
// The packages split into three areas:
//
//  1. [catalog], [matcher] and [resolver] - which service, which crate and
//     which installed version
//  2. [dag], [deps] and [deps/rust] - loading a cargo project's resolved
//     dependency graph
//  3. [docs], [errors], [observability] and [buildinfo] - URLs, structured
//     errors, hooks and version stamping
//
// # Architecture
//
// The data flow for a synced lookup:
//
//	Cargo.toml / Cargo.lock
//	         ↓
//	    [deps/rust] (cargo metadata or lockfile → [dag.DAG])
//	         ↓
//	    [resolver] (first "aws-sdk-<name>@X.Y.Z" package ID, else "latest")
//	         ↓
//	    [docs] (https://docs.rs/aws-sdk-<name>/<version>/...)
//
// # Quick Start
//
//	import (
//	    "github.com/335g/clidoc/pkg/catalog"
//	    "github.com/335g/clidoc/pkg/deps"
//	    "github.com/335g/clidoc/pkg/deps/rust"
//	    "github.com/335g/clidoc/pkg/docs"
//	    "github.com/335g/clidoc/pkg/resolver"
//	)
//
//	loader := resolver.LoaderFunc(func(ctx context.Context) (resolver.Graph, error) {
//	    return rust.NewMetadata(nil).Parse(ctx, "", deps.Options{})
//	})
//	v, err := resolver.ResolveFrom(ctx, catalog.S3, loader)
//	if err != nil {
//	    return err // the graph could not be loaded
//	}
//	url, _ := docs.URL(docs.DefaultBaseURL, catalog.S3.Name(), v.String())
//
// Resolution never fails for lack of a match: a project that does not
// depend on the service's client crate resolves to [resolver.Latest].
//
// Parsers return the project's packages as a [dag.DAG] with an edge from
// each package to each of its dependencies. Besides enumerating package
// IDs for resolution, the graph tells whether a matched crate is a direct
// dependency of the project and through which packages it is reached.
//
// [catalog]: https://pkg.go.dev/github.com/335g/clidoc/pkg/catalog
// [matcher]: https://pkg.go.dev/github.com/335g/clidoc/pkg/matcher
// [resolver]: https://pkg.go.dev/github.com/335g/clidoc/pkg/resolver
// [resolver.Latest]: https://pkg.go.dev/github.com/335g/clidoc/pkg/resolver#Latest
// [dag]: https://pkg.go.dev/github.com/335g/clidoc/pkg/dag
// [dag.DAG]: https://pkg.go.dev/github.com/335g/clidoc/pkg/dag#DAG
// [deps]: https://pkg.go.dev/github.com/335g/clidoc/pkg/deps
// [deps/rust]: https://pkg.go.dev/github.com/335g/clidoc/pkg/deps/rust
// [docs]: https://pkg.go.dev/github.com/335g/clidoc/pkg/docs
// [errors]: https://pkg.go.dev/github.com/335g/clidoc/pkg/errors
// [observability]: https://pkg.go.dev/github.com/335g/clidoc/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/335g/clidoc/pkg/buildinfo
package pkg
