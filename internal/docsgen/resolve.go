package docsgen

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// Resolver obtains a subsystem's route table. The safe strategy isolates
// every failure mode behind a ResolutionError; the direct strategy serves
// references the caller already holds.
type Resolver interface {
	Resolve(spec Subsystem) (chi.Router, error)
}

// LookupFunc maps a subsystem name to its provider.
type LookupFunc func(name string) (Provider, bool)

// SafeResolver resolves through a provider lookup and converts an unknown
// name, a provider error, or a provider panic into a ResolutionError, so one
// broken subsystem never halts resolution of the others. Each failure is
// also reported as a warning line.
type SafeResolver struct {
	lookup LookupFunc
	logger *slog.Logger
}

// NewSafeResolver returns a SafeResolver. A nil lookup means the global
// provider registry; a nil logger means slog.Default.
func NewSafeResolver(lookup LookupFunc, logger *slog.Logger) *SafeResolver {
	if lookup == nil {
		lookup = LookupProvider
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SafeResolver{lookup: lookup, logger: logger}
}

// Resolve returns the subsystem's route table or a ResolutionError. It never
// propagates provider failures.
func (r *SafeResolver) Resolve(spec Subsystem) (chi.Router, error) {
	p, ok := r.lookup(spec.Name)
	if !ok {
		return nil, r.fail(spec.Name, errors.New("no registered provider"))
	}
	routes, err := callProvider(p)
	if err != nil {
		return nil, r.fail(spec.Name, err)
	}
	if routes == nil {
		return nil, r.fail(spec.Name, errors.New("provider returned no route table"))
	}
	return routes, nil
}

func (r *SafeResolver) fail(name string, cause error) error {
	r.logger.Warn("subsystem resolution failed", "subsystem", name, "error", cause)
	return &ResolutionError{Subsystem: name, Cause: cause}
}

// callProvider invokes p, converting a panic during subsystem initialization
// into an error.
func callProvider(p Provider) (routes chi.Router, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			routes = nil
			err = fmt.Errorf("provider panicked: %v", rec)
		}
	}()
	return p()
}

// DirectResolver serves route tables the caller already holds, for runs
// where the whole service is known to be loaded.
type DirectResolver struct {
	tables map[string]chi.Router
}

// NewDirectResolver returns a resolver over the given live route tables.
func NewDirectResolver(tables map[string]chi.Router) *DirectResolver {
	return &DirectResolver{tables: tables}
}

// Resolve returns the held route table for the subsystem. A missing entry is
// still reported as a ResolutionError so the orchestrator's recovery path is
// uniform across strategies.
func (r *DirectResolver) Resolve(spec Subsystem) (chi.Router, error) {
	routes, ok := r.tables[spec.Name]
	if !ok || routes == nil {
		return nil, &ResolutionError{Subsystem: spec.Name, Cause: errors.New("no route table supplied")}
	}
	return routes, nil
}
