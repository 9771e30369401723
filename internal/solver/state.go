// Package solver holds the session-scoped state the unifier mutates:
// the type graph itself, the registry of root variables introduced during
// this session, and the accumulated reported errors.
package solver

import (
	"github.com/google/uuid"

	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/types"
)

// State is one unification session. A session owns exactly one Graph and is
// not meant to be shared across goroutines; a session is a single-writer
// component, so callers must serialize access themselves.
type State struct {
	Graph     *types.Graph
	SessionID uuid.UUID

	registry []types.Variable
	errors   []RegionedError
}

// RegionedError pairs a reported error with the region it was raised at.
type RegionedError struct {
	Region Region
	Err    errs.ReportedError
}

// NewState opens a fresh session with its own graph and a random session id,
// useful for correlating a run's diagnostics in logs or the CLI's session log.
func NewState() *State {
	return &State{
		Graph:     types.NewGraph(),
		SessionID: uuid.New(),
	}
}

// Fresh allocates a new variable in this session's graph and remembers it in
// the registry so callers can enumerate every variable introduced so far.
func (s *State) Fresh(content types.Content, rank int) types.Variable {
	v := s.Graph.Fresh(content, rank)
	s.registry = append(s.registry, v)
	return v
}

// Registry returns every variable Fresh has allocated in this session, in
// allocation order.
func (s *State) Registry() []types.Variable {
	out := make([]types.Variable, len(s.registry))
	copy(out, s.registry)
	return out
}

// Merge unions a and b in this session's graph, installing content at the
// surviving representative.
func (s *State) Merge(a, b types.Variable, content types.Content) types.Variable {
	return s.Graph.Merge(a, b, content)
}

// Heal unions a and b into a shared Error descriptor, the graph-side half of
// recovering from a unification failure so later unification attempts
// involving either variable do not re-trip the same mismatch.
func (s *State) Heal(a, b types.Variable, reason string) {
	s.Graph.Heal(a, b, reason)
}

// AddError appends a reported error for this session, tagged with the
// region it occurred at.
func (s *State) AddError(region Region, err errs.ReportedError) {
	s.errors = append(s.errors, RegionedError{Region: region, Err: err})
}

// Errors returns every reported error accumulated so far, in the order they
// were added.
func (s *State) Errors() []RegionedError {
	out := make([]RegionedError, len(s.errors))
	copy(out, s.errors)
	return out
}

// HasErrors reports whether any error has been reported in this session.
func (s *State) HasErrors() bool {
	return len(s.errors) > 0
}
