package dag

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New(nil)

	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) = %v", err)
	}
	if err := g.AddNode(Node{ID: ""}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want %v", err, ErrInvalidNodeID)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want %v", err, ErrDuplicateNodeID)
	}

	n, ok := g.Node("a")
	if !ok {
		t.Fatal("Node(a) not found")
	}
	if n.Meta == nil {
		t.Error("Meta should be initialised")
	}
	if _, ok := g.Node("missing"); ok {
		t.Error("Node(missing) reported as found")
	}
}

func TestAddEdge(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(unknown from) = %v, want %v", err, ErrUnknownSourceNode)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(unknown to) = %v, want %v", err, ErrUnknownTargetNode)
	}
	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge(a, b) = %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if got := g.Children("a"); len(got) != 1 || got[0] != "b" {
		t.Errorf("Children(a) = %v, want [b]", got)
	}
	if got := g.Parents("b"); len(got) != 1 || got[0] != "a" {
		t.Errorf("Parents(b) = %v, want [a]", got)
	}
}

func TestInsertionOrder(t *testing.T) {
	g := New(nil)
	want := []string{"zeta", "alpha", "mu"}
	for _, id := range want {
		_ = g.AddNode(Node{ID: id})
	}

	for i, n := range g.Nodes() {
		if n.ID != want[i] {
			t.Fatalf("Nodes()[%d] = %s, want %s", i, n.ID, want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		edges   [][2]string
		wantErr error
	}{
		{"empty", nil, nil},
		{"chain", [][2]string{{"a", "b"}, {"b", "c"}}, nil},
		{"diamond", [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}}, nil},
		{"self loop", [][2]string{{"a", "a"}}, ErrGraphHasCycle},
		{"cycle", [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}, ErrGraphHasCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			for _, id := range []string{"a", "b", "c", "d"} {
				_ = g.AddNode(Node{ID: id})
			}
			for _, e := range tt.edges {
				if err := g.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
					t.Fatal(err)
				}
			}
			if err := g.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMeta(t *testing.T) {
	g := New(nil)
	if g.Meta() == nil {
		t.Fatal("Meta() should never be nil")
	}
	g.Meta()["workspace_root"] = "/src/app"
	if g.Meta()["workspace_root"] != "/src/app" {
		t.Error("Meta() should return the graph's map")
	}
}
