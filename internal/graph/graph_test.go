package graph

import (
	"reflect"
	"testing"
)

func TestBuild_SingleDependency(t *testing.T) {
	g := Build(map[string][]string{
		"order": {"user"},
	})

	if !g.HasNode("user") || !g.HasNode("order") {
		t.Fatalf("Expected both nodes present, got %v", g.AllNodes())
	}
	if got := g.Prerequisites("order"); !reflect.DeepEqual(got, []string{"user"}) {
		t.Errorf("Expected order prerequisites [user], got %v", got)
	}
	if got := g.Dependents("user"); !reflect.DeepEqual(got, []string{"order"}) {
		t.Errorf("Expected user dependents [order], got %v", got)
	}
}

func TestBuild_Leaves(t *testing.T) {
	g := Build(map[string][]string{
		"product": {"category", "vendor"},
		"order":   {"user", "product"},
	})

	leaves := g.Leaves()
	expected := []string{"category", "user", "vendor"}
	if !reflect.DeepEqual(leaves, expected) {
		t.Errorf("Expected leaves %v, got %v", expected, leaves)
	}
}

func TestInDegree(t *testing.T) {
	g := Build(map[string][]string{
		"review": {"user", "product", "order"},
	})

	if g.InDegree("review") != 3 {
		t.Errorf("Expected review in-degree 3, got %d", g.InDegree("review"))
	}
	if g.InDegree("user") != 0 {
		t.Errorf("Expected user in-degree 0, got %d", g.InDegree("user"))
	}
}

func TestAncestors_Transitive(t *testing.T) {
	g := Build(map[string][]string{
		"product": {"category", "vendor"},
		"order":   {"user", "product"},
		"payment": {"order"},
	})

	got := g.Ancestors("payment")
	expected := []string{"category", "order", "product", "user", "vendor"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected ancestors %v, got %v", expected, got)
	}
}

func TestAncestors_Leaf(t *testing.T) {
	g := Build(map[string][]string{
		"order": {"user"},
	})

	if got := g.Ancestors("user"); len(got) != 0 {
		t.Errorf("Expected no ancestors for leaf, got %v", got)
	}
}

func TestAllEdges(t *testing.T) {
	g := Build(map[string][]string{
		"product": {"category", "vendor"},
	})

	edges := g.AllEdges()
	expected := []Edge{
		{From: "category", To: "product"},
		{From: "vendor", To: "product"},
	}
	if !reflect.DeepEqual(edges, expected) {
		t.Errorf("Expected edges %v, got %v", expected, edges)
	}
}

func TestNodeCount(t *testing.T) {
	g := Build(map[string][]string{
		"order": {"user", "product"},
	})

	if g.NodeCount() != 3 {
		t.Errorf("Expected 3 nodes, got %d", g.NodeCount())
	}
}
