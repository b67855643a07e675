// Package graph provides the entity dependency graph and ordering for storegen.
package graph

import "sort"

// Edge represents a dependency relationship between entity types.
type Edge struct {
	From string // Prerequisite entity type
	To   string // Dependent entity type
}

// Graph represents the dependency structure between entity types.
// An edge A -> B means B holds foreign keys into A, so A must be
// generated before B.
type Graph struct {
	nodes    map[string]bool
	children map[string][]string // entity type -> dependents (outgoing edges)
	parents  map[string][]string // entity type -> prerequisites (incoming edges)
}

// New creates a new empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]bool),
		children: make(map[string][]string),
		parents:  make(map[string][]string),
	}
}

// Build constructs a graph from a dependency table mapping each entity
// type to the entity types it depends on.
func Build(deps map[string][]string) *Graph {
	g := New()
	for entity, prereqs := range deps {
		g.AddNode(entity)
		for _, p := range prereqs {
			g.AddNode(p)
			g.AddEdge(p, entity)
		}
	}
	g.normalize()
	return g
}

// AddNode adds an entity type to the graph.
func (g *Graph) AddNode(name string) {
	g.nodes[name] = true
}

// AddEdge adds a prerequisite -> dependent relationship to the graph.
// It also maintains the reverse mapping for efficient prerequisite lookups.
func (g *Graph) AddEdge(prereq, dependent string) {
	g.children[prereq] = append(g.children[prereq], dependent)
	g.parents[dependent] = append(g.parents[dependent], prereq)
}

// normalize sorts all adjacency lists. Kahn's algorithm visits children in
// list order, so sorted lists keep the topological order identical between
// runs regardless of map iteration order during construction.
func (g *Graph) normalize() {
	for _, list := range g.children {
		sort.Strings(list)
	}
	for _, list := range g.parents {
		sort.Strings(list)
	}
}

// HasNode returns true if the graph contains the given entity type.
func (g *Graph) HasNode(name string) bool {
	return g.nodes[name]
}

// NodeCount returns the number of entity types in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// AllNodes returns all entity type names in sorted order.
func (g *Graph) AllNodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)
	return nodes
}

// AllEdges returns all edges, ordered by prerequisite then dependent.
func (g *Graph) AllEdges() []Edge {
	var edges []Edge
	for _, prereq := range g.AllNodes() {
		for _, dependent := range g.children[prereq] {
			edges = append(edges, Edge{From: prereq, To: dependent})
		}
	}
	return edges
}

// Dependents returns the entity types that directly depend on the given one.
func (g *Graph) Dependents(name string) []string {
	return g.children[name]
}

// Prerequisites returns the entity types the given one directly depends on.
func (g *Graph) Prerequisites(name string) []string {
	return g.parents[name]
}

// Leaves returns all entity types with no prerequisites, sorted.
func (g *Graph) Leaves() []string {
	var leaves []string
	for _, name := range g.AllNodes() {
		if len(g.parents[name]) == 0 {
			leaves = append(leaves, name)
		}
	}
	return leaves
}

// InDegree returns the number of prerequisites for an entity type.
func (g *Graph) InDegree(name string) int {
	return len(g.parents[name])
}

// Ancestors returns the full prerequisite closure of an entity type: every
// entity that must be generated before it, directly or transitively. The
// result is sorted and does not include the entity itself.
func (g *Graph) Ancestors(name string) []string {
	seen := make(map[string]bool)
	var walk func(string)
	walk = func(n string) {
		for _, p := range g.parents[n] {
			if !seen[p] {
				seen[p] = true
				walk(p)
			}
		}
	}
	walk(name)

	result := make([]string, 0, len(seen))
	for n := range seen {
		result = append(result, n)
	}
	sort.Strings(result)
	return result
}
