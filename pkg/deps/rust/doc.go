// Package rust loads the resolved dependency graph of a cargo project.
//
// # Overview
//
// Two [deps.ManifestParser] implementations are provided:
//
//   - [Metadata] runs "cargo metadata" for a Cargo.toml and builds the graph
//     from cargo's own resolution. Node IDs are cargo package IDs such as
//     "registry+https://github.com/rust-lang/crates.io-index#serde@1.0.210".
//   - [CargoLock] reads a Cargo.lock directly, without invoking cargo, and
//     synthesises package IDs in the same form.
//
// Use [Parsers] with [deps.DetectManifest] to pick one by file name:
//
//	parser, _ := deps.DetectManifest(path, rust.Parsers()...)
//	result, err := parser.Parse(ctx, path, deps.Options{})
//
// Every failure to produce a graph (cargo missing or failing, unreadable or
// malformed files) is reported with the GRAPH_UNAVAILABLE error code.
package rust
