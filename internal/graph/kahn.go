package graph

import (
	"container/list"
	"fmt"
	"sort"
	"strings"
)

// ProcessingQueue wraps a list-based queue for Kahn's algorithm processing.
// It holds nodes that are ready to be processed (have in-degree of 0).
type ProcessingQueue struct {
	queue *list.List
}

// NewProcessingQueue creates a new empty processing queue.
func NewProcessingQueue() *ProcessingQueue {
	return &ProcessingQueue{
		queue: list.New(),
	}
}

// Enqueue adds a node to the back of the queue.
func (pq *ProcessingQueue) Enqueue(node string) {
	pq.queue.PushBack(node)
}

// Dequeue removes and returns the node at the front of the queue.
// Returns empty string and false if queue is empty.
func (pq *ProcessingQueue) Dequeue() (string, bool) {
	if pq.queue.Len() == 0 {
		return "", false
	}
	elem := pq.queue.Front()
	pq.queue.Remove(elem)
	return elem.Value.(string), true
}

// Len returns the number of nodes in the queue.
func (pq *ProcessingQueue) Len() int {
	return pq.queue.Len()
}

// IsEmpty returns true if the queue has no nodes.
func (pq *ProcessingQueue) IsEmpty() bool {
	return pq.queue.Len() == 0
}

// CalculateInDegrees computes the number of incoming edges for each node
// in the graph. This is the first step of Kahn's algorithm.
// Returns a map of entity type -> in-degree count.
func (g *Graph) CalculateInDegrees() map[string]int {
	inDegree := make(map[string]int)

	for name := range g.nodes {
		inDegree[name] = 0
	}

	for _, dependents := range g.children {
		for _, d := range dependents {
			inDegree[d]++
		}
	}

	return inDegree
}

// initializeQueue creates a processing queue populated with all nodes that
// have in-degree of 0, enqueued in sorted name order. Sorted seeding keeps
// the topological order stable between runs; the generation engine's
// reproducibility contract depends on it.
func (g *Graph) initializeQueue(inDegree map[string]int) *ProcessingQueue {
	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	pq := NewProcessingQueue()
	for _, name := range ready {
		pq.Enqueue(name)
	}
	return pq
}

// CycleError represents a cycle detection error naming the entity types
// that could not be ordered.
type CycleError struct {
	TotalNodes  int
	Unprocessed []string // Entity types that are part of or blocked by a cycle
}

// Error implements the error interface with a descriptive message.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected in dependency graph: %d of %d entity types could not be ordered: %s",
		len(e.Unprocessed), e.TotalNodes, strings.Join(e.Unprocessed, ", "))
}

// TopologicalSort returns entity types in topological order using Kahn's
// algorithm: every entity appears after all of its prerequisites. The order
// is deterministic for a given graph. Returns a CycleError if the graph
// contains a cycle.
func (g *Graph) TopologicalSort() ([]string, error) {
	inDegree := g.CalculateInDegrees()
	queue := g.initializeQueue(inDegree)

	var result []string

	for !queue.IsEmpty() {
		node, _ := queue.Dequeue()
		result = append(result, node)

		// Children lists are sorted at build time, so newly ready nodes
		// are discovered in a stable order.
		for _, dependent := range g.children[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue.Enqueue(dependent)
			}
		}
	}

	if len(result) != len(g.nodes) {
		processed := make(map[string]bool, len(result))
		for _, n := range result {
			processed[n] = true
		}
		var unprocessed []string
		for _, name := range g.AllNodes() {
			if !processed[name] {
				unprocessed = append(unprocessed, name)
			}
		}
		return nil, &CycleError{TotalNodes: len(g.nodes), Unprocessed: unprocessed}
	}

	return result, nil
}

// GenerationOrder returns the order in which the given entity types should
// be generated so that every foreign-key reference resolves to an already
// generated pool. It is the topological order filtered to the given set.
func (g *Graph) GenerationOrder(entities []string) ([]string, error) {
	order, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(entities))
	for _, e := range entities {
		wanted[e] = true
	}

	var result []string
	for _, name := range order {
		if wanted[name] {
			result = append(result, name)
		}
	}
	return result, nil
}

// HasCycle returns true if the dependency graph contains a cycle.
func (g *Graph) HasCycle() bool {
	_, err := g.TopologicalSort()
	return err != nil
}

// Validate checks the graph for structural issues such as cycles.
// This should be called after building the graph to fail fast at startup
// rather than discovering issues during generation.
func (g *Graph) Validate() error {
	_, err := g.TopologicalSort()
	return err
}
