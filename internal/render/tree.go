package render

import (
	"fmt"
	"strings"

	"github.com/dbsmedya/storegen/internal/graph"
)

// DependencyList renders the entity types in generation order, one line
// per entity with its direct prerequisites.
func DependencyList(g *graph.Graph) (string, error) {
	order, err := g.TopologicalSort()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, name := range order {
		prereqs := g.Prerequisites(name)
		if len(prereqs) == 0 {
			fmt.Fprintf(&b, "%2d. %s\n", i+1, name)
			continue
		}
		fmt.Fprintf(&b, "%2d. %s  <- %s\n", i+1, name, strings.Join(prereqs, ", "))
	}
	return b.String(), nil
}
