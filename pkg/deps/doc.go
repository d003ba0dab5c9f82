// Package deps loads a project's resolved dependency graph from local
// manifest files.
//
// A [ManifestParser] turns a manifest (for cargo: Cargo.toml, resolved by
// running "cargo metadata", or Cargo.lock, read directly) into a
// [ManifestResult] whose graph holds one node per resolved package, keyed by
// the build tool's package identifier.
//
//	parser, err := deps.DetectManifest("Cargo.toml", rust.Parsers()...)
//	result, err := parser.Parse(ctx, "Cargo.toml", deps.Options{})
//	for _, id := range result.PackageIDs() {
//	    fmt.Println(id)
//	}
//
// Parsers report every failure to produce a graph with the
// GRAPH_UNAVAILABLE error code from package errors.
package deps
