// Package resolver finds the locally installed version of an AWS service's
// client crate.
//
// # Overview
//
// [Resolve] walks the package identifiers of a project's resolved dependency
// graph and returns the version of the first identifier that matches the
// service's crate pattern (see package matcher). When nothing matches, the
// result is the [Latest] sentinel, which docs.rs interprets as the most
// recently published version.
//
//	v := resolver.Resolve(catalog.Lambda, graph)
//	fmt.Println(v) // "1.54.2" or "latest"
//
// # Loading
//
// The dependency graph comes from an external [Loader], typically a cargo
// manifest parser. [ResolveFrom] loads the graph and resolves in one call.
// A load failure is fatal and is returned unchanged; it is never confused
// with the no-match outcome, which is not an error.
//
// # Ambiguity
//
// A graph may contain more than one package satisfying the pattern (for
// example the same crate from two registries). The first identifier in the
// graph's own enumeration order wins. That order is unspecified, so neither
// is the winner.
package resolver
