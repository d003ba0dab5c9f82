// Package dag provides the directed package graph produced by the
// dependency loaders.
//
// Nodes are resolved packages keyed by the build tool's package identifier;
// edges point from a package to each of its dependencies. Nodes are kept in
// insertion order, which is the order the loader saw them in.
//
//	g := dag.New(nil)
//	_ = g.AddNode(dag.Node{ID: "app@0.1.0"})
//	_ = g.AddNode(dag.Node{ID: "aws-sdk-s3@1.68.0"})
//	_ = g.AddEdge(dag.Edge{From: "app@0.1.0", To: "aws-sdk-s3@1.68.0"})
//
// Both nodes and the graph carry [Metadata] maps, used for the package name,
// version and source.
package dag
