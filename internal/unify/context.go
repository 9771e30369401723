// Package unify is the unification driver: the recursive-descent dispatch
// over Content variants, the super-class lattice, rigid and alias rules,
// the extensible-record row algorithm, and mismatch construction.
package unify

import (
	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/solver"
	"github.com/fluxtype/unify/internal/types"
)

// ctx bundles the two variables under comparison, their descriptors at the
// time of dispatch, and which side is "expected" versus "actual". It is
// passed by value through the recursive rule functions.
type ctx struct {
	orientation errs.Orientation
	var1, var2  types.Variable
	desc1, desc2 types.Descriptor
}

// reorient swaps the two sides and flips orientation. Pure structural
// recursion never calls this; only a rule that dispatches on desc1's variant
// but needs to reuse a rule written for the opposite arrangement does.
func (c ctx) reorient() ctx {
	return ctx{
		orientation: c.orientation.Flip(),
		var1:        c.var2,
		var2:        c.var1,
		desc1:       c.desc2,
		desc2:       c.desc1,
	}
}

// Unifier is one unification session: the graph and error sink it mutates,
// plus the renderer used only on failure paths to read back source types
// for the reported error.
type Unifier struct {
	state  *solver.State
	render func(types.Variable) errs.RenderedType
}

// New builds a Unifier over state, using render to produce user-facing
// types for any error this session reports.
func New(state *solver.State, render func(types.Variable) errs.RenderedType) *Unifier {
	return &Unifier{state: state, render: render}
}
