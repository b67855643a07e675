// Package registry tracks the identifier pools of a generation session so
// dependent entity builders can assign foreign keys that resolve to records
// generated earlier in the same session.
package registry

import (
	"fmt"

	"github.com/dbsmedya/storegen/internal/random"
)

// ReferenceError is returned in strict mode when a foreign key is requested
// for an entity type with no registered identifier pool.
type ReferenceError struct {
	EntityType string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("no identifiers registered for entity type %q", e.EntityType)
}

// Registry holds one identifier pool per entity type for a single
// generation session. It is created per request and never shared between
// sessions, so it needs no locking.
type Registry struct {
	src     *random.Source
	strict  bool
	pools   map[string][]string
	orphans int
}

// New creates a Registry drawing random pool elements from src.
//
// With strict=false, a lookup against an empty pool mints a fresh
// unregistered identifier instead of failing. That keeps generation moving
// when a builder runs out of dependency order, at the cost of a dangling
// foreign key; every such fallback is counted and reported via Orphans.
// With strict=true the lookup returns a ReferenceError instead.
func New(src *random.Source, strict bool) *Registry {
	return &Registry{
		src:    src,
		strict: strict,
		pools:  make(map[string][]string),
	}
}

// Register replaces the stored pool for an entity type. Insertion order is
// preserved; subsequent lookups draw from this pool.
func (r *Registry) Register(entityType string, ids []string) {
	pool := make([]string, len(ids))
	copy(pool, ids)
	r.pools[entityType] = pool
}

// Has returns true iff a non-empty pool is registered for the entity type.
func (r *Registry) Has(entityType string) bool {
	return len(r.pools[entityType]) > 0
}

// Pool returns the registered identifiers for an entity type in insertion
// order. The returned slice must not be modified.
func (r *Registry) Pool(entityType string) []string {
	return r.pools[entityType]
}

// RandomOne returns a uniformly random identifier from the entity type's
// pool. On an empty pool it applies the strict/lenient policy described on
// New.
func (r *Registry) RandomOne(entityType string) (string, error) {
	pool := r.pools[entityType]
	if len(pool) == 0 {
		if r.strict {
			return "", &ReferenceError{EntityType: entityType}
		}
		r.orphans++
		return r.src.UUID(), nil
	}
	return pool[r.src.IntBetween(0, len(pool)-1)], nil
}

// Orphans returns how many foreign keys were minted as empty-pool fallbacks
// during this session. Zero when generation ran in dependency order.
func (r *Registry) Orphans() int {
	return r.orphans
}
