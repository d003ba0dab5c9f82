package dag_test

import (
	"fmt"

	"github.com/335g/clidoc/pkg/dag"
)

func ExampleDAG_basic() {
	// app → aws-sdk-s3 → aws-smithy-types
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "app@0.1.0"})
	_ = g.AddNode(dag.Node{ID: "aws-sdk-s3@1.68.0"})
	_ = g.AddNode(dag.Node{ID: "aws-smithy-types@1.2.0"})
	_ = g.AddEdge(dag.Edge{From: "app@0.1.0", To: "aws-sdk-s3@1.68.0"})
	_ = g.AddEdge(dag.Edge{From: "aws-sdk-s3@1.68.0", To: "aws-smithy-types@1.2.0"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	for _, n := range g.Nodes() {
		fmt.Println(n.ID)
	}
	// Output:
	// Nodes: 3
	// Edges: 2
	// app@0.1.0
	// aws-sdk-s3@1.68.0
	// aws-smithy-types@1.2.0
}

func ExampleDAG_traversal() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "app"})
	_ = g.AddNode(dag.Node{ID: "aws-config"})
	_ = g.AddNode(dag.Node{ID: "aws-sdk-sqs"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "aws-config"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "aws-sdk-sqs"})

	fmt.Println("Children of app:", g.Children("app"))
	fmt.Println("Parents of aws-sdk-sqs:", g.Parents("aws-sdk-sqs"))
	// Output:
	// Children of app: [aws-config aws-sdk-sqs]
	// Parents of aws-sdk-sqs: [app]
}
