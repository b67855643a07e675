package engine

import (
	"github.com/dbsmedya/storegen/internal/builder"
	"github.com/dbsmedya/storegen/internal/config"
	"github.com/dbsmedya/storegen/internal/random"
	"github.com/dbsmedya/storegen/internal/registry"
)

// Session is one generation run: one seeded random source and one
// identifier registry, created per request and discarded with it. Sessions
// are never shared between requests, so concurrent requests cannot corrupt
// each other's identifier pools or draw sequences.
type Session struct {
	Source   *random.Source
	Registry *registry.Registry
	cfg      config.GeneratorConfig
}

// NewSession creates a session. With a nil seed the source picks one from
// the system random source; the resolved seed is reported on the response
// so the caller can replay the run.
func NewSession(seed *int64, cfg config.GeneratorConfig) *Session {
	var src *random.Source
	if seed != nil {
		src = random.New(*seed)
	} else {
		src = random.NewAuto()
	}
	return &Session{
		Source:   src,
		Registry: registry.New(src, cfg.StrictReferences),
		cfg:      cfg,
	}
}

// Context returns the builder-facing view of the session.
func (s *Session) Context() *builder.Context {
	return &builder.Context{
		Rand:     s.Source,
		Registry: s.Registry,
		Cfg:      s.cfg,
	}
}
