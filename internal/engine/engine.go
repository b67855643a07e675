// Package engine orchestrates generation sessions: it validates requests,
// walks the entity dependency graph so every prerequisite identifier pool
// exists before a dependent builder runs, and serializes the resulting
// batch.
package engine

import (
	"fmt"
	"strings"

	"github.com/dbsmedya/storegen/internal/builder"
	"github.com/dbsmedya/storegen/internal/config"
	"github.com/dbsmedya/storegen/internal/graph"
	"github.com/dbsmedya/storegen/internal/logger"
	"github.com/dbsmedya/storegen/internal/record"
	"github.com/dbsmedya/storegen/internal/serializer"
)

// Request describes one generation call.
type Request struct {
	EntityType string
	Count      int
	Seed       *int64 // nil means pick one and report it
	Format     string // json, csv, or xml
}

// Response carries the serialized batch and the session metadata callers
// need to replay or save it.
type Response struct {
	Seed        int64
	Body        []byte
	ContentType string
	Filename    string
	Records     int
	Orphans     int
}

// Engine owns the static entity catalog and dependency graph. It holds no
// per-request state; every Generate call runs in a fresh session.
type Engine struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog map[string]builder.Spec
	graph   *graph.Graph
}

// New creates an Engine from configuration. It builds the dependency graph
// from the entity catalog and fails fast if the catalog contains a cycle.
func New(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	g := graph.Build(builder.Dependencies())
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("entity catalog is invalid: %w", err)
	}

	return &Engine{
		cfg:     cfg,
		log:     log,
		catalog: builder.Catalog(),
		graph:   g,
	}, nil
}

// Graph returns the entity dependency graph.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// EntityTypes returns all generatable entity type names, sorted.
func (e *Engine) EntityTypes() []string {
	return builder.EntityTypes()
}

// Build validates the entity type and count, runs a fresh session, and
// returns the raw batch together with the session it was generated in.
// Prerequisite entity types are generated first with the configured default
// count, in deterministic topological order, so every foreign key the
// target builder assigns resolves to a registered identifier.
func (e *Engine) Build(entityType string, count int, seed *int64) (*record.Batch, *Session, error) {
	spec, ok := e.catalog[entityType]
	if !ok {
		return nil, nil, &ConfigError{
			Field:   "entity",
			Value:   entityType,
			Message: fmt.Sprintf("unknown entity type (known: %s)", strings.Join(builder.EntityTypes(), ", ")),
		}
	}
	if count < 1 {
		return nil, nil, &ConfigError{Field: "count", Value: count, Message: "must be at least 1"}
	}
	if count > e.cfg.Generator.MaxCount {
		return nil, nil, &ConfigError{
			Field:   "count",
			Value:   count,
			Message: fmt.Sprintf("exceeds maximum of %d", e.cfg.Generator.MaxCount),
		}
	}

	sess := NewSession(seed, e.cfg.Generator)
	log := e.log.WithEntity(entityType).WithSeed(sess.Source.Seed())

	batch, err := e.buildWithPrerequisites(sess, entityType, spec, count, log)
	if err != nil {
		return nil, nil, err
	}
	return batch, sess, nil
}

// Generate validates the full request, runs Build in a fresh session, and
// serializes the resulting batch.
func (e *Engine) Generate(req Request) (*Response, error) {
	if !serializer.Supported(req.Format) {
		return nil, &ConfigError{Field: "format", Value: req.Format, Message: "must be json, csv, or xml"}
	}

	batch, sess, err := e.Build(req.EntityType, req.Count, req.Seed)
	if err != nil {
		return nil, err
	}
	log := e.log.WithEntity(req.EntityType).WithSeed(sess.Source.Seed())

	body, err := serializer.Serialize(batch, serializer.Options{
		Format:  req.Format,
		RootTag: pluralize(req.EntityType),
		ItemTag: req.EntityType,
	})
	if err != nil {
		return nil, err
	}

	orphans := sess.Registry.Orphans()
	if orphans > 0 {
		log.Warnw("foreign keys assigned from empty identifier pools", "orphans", orphans)
	}
	log.Infow("batch generated", "records", batch.Len(), "format", req.Format)

	return &Response{
		Seed:        sess.Source.Seed(),
		Body:        body,
		ContentType: serializer.ContentType(req.Format),
		Filename:    fmt.Sprintf("%s_%d.%s", req.EntityType, sess.Source.Seed(), serializer.Extension(req.Format)),
		Records:     batch.Len(),
		Orphans:     orphans,
	}, nil
}

// buildWithPrerequisites generates the prerequisite closure of the target
// entity type with the configured default count, then the target itself
// with the requested count. Prerequisites always use the default count
// (never the request count) so a given seed replays identically regardless
// of the requested size.
func (e *Engine) buildWithPrerequisites(sess *Session, entityType string, spec builder.Spec, count int, log *logger.Logger) (*record.Batch, error) {
	prereqs, err := e.graph.GenerationOrder(e.graph.Ancestors(entityType))
	if err != nil {
		return nil, err
	}

	ctx := sess.Context()
	for _, dep := range prereqs {
		depSpec := e.catalog[dep]
		depBatch, err := depSpec.Build(ctx, e.cfg.Generator.DefaultCount)
		if err != nil {
			return nil, fmt.Errorf("generating prerequisite %s: %w", dep, err)
		}
		log.Debugw("prerequisite generated", "prerequisite", dep, "records", depBatch.Len())
	}

	batch, err := spec.Build(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", entityType, err)
	}
	return batch, nil
}

// pluralize derives the XML root tag from an entity type name. Names that
// are their own plural ("user_analytics") get a _list suffix so the batch
// wrapper stays distinguishable from the record elements.
func pluralize(entityType string) string {
	switch {
	case strings.HasSuffix(entityType, "s"):
		return entityType + "_list"
	case strings.HasSuffix(entityType, "y"):
		return strings.TrimSuffix(entityType, "y") + "ies"
	default:
		return entityType + "s"
	}
}
