package exposure

import (
	"context"
	"errors"
	"exposure/pkg/domain"
	"fmt"
)

// ErrEmptyHostname is returned when a domain normalizes to nothing.
var ErrEmptyHostname = errors.New("domain normalizes to an empty hostname")

// Engine runs normalize, expand and probe for one domain against a fixed catalog.
type Engine struct {
	patterns   []Pattern
	dispatcher *Dispatcher
}

// NewEngine returns an Engine probing patterns through dispatcher. A nil
// patterns slice selects the built-in catalog.
func NewEngine(dispatcher *Dispatcher, patterns []Pattern) *Engine {
	if patterns == nil {
		patterns = Catalog()
	}

	return &Engine{patterns: patterns, dispatcher: dispatcher}
}

// Patterns returns the patterns this engine probes.
func (e *Engine) Patterns() []Pattern {
	return e.patterns
}

// Candidates normalizes rawDomain and expands it against the catalog.
func (e *Engine) Candidates(rawDomain string) ([]Candidate, error) {
	host := NormalizeDomain(rawDomain)
	if host == "" {
		return nil, ErrEmptyHostname
	}

	return Expand(host, e.patterns), nil
}

// Scan probes rawDomain and returns its confirmed findings without scan context.
func (e *Engine) Scan(ctx context.Context, rawDomain string) ([]domain.Finding, error) {
	candidates, err := e.Candidates(rawDomain)
	if err != nil {
		return nil, err
	}

	findings, err := e.dispatcher.Probe(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("could not probe candidates: %w", err)
	}

	return findings, nil
}
