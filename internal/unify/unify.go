package unify

import (
	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/solver"
	"github.com/fluxtype/unify/internal/types"
)

// Unify is the sole public entry point. It attempts to make expected and
// actual equal in the session's graph. On success it returns nil. On
// failure it reads both sides back as rendered source types, heals both
// variables to an inert Error content so later constraints touching either
// one do not re-fail, and appends a structured error to the session.
func (u *Unifier) Unify(hint string, region solver.Region, expected, actual types.Variable) error {
	p := u.guardedUnify(errs.ExpectedActual, expected, actual)
	if p == nil {
		return nil
	}
	return u.report(hint, region, expected, actual, p)
}

func (u *Unifier) report(hint string, region solver.Region, expected, actual types.Variable, p *errs.Problem) error {
	left := u.render(expected)
	right := u.render(actual)
	u.state.Heal(expected, actual, hint)

	var reported errs.ReportedError
	switch p.Kind {
	case errs.KindInfinite:
		rendered := left
		if p.Orientation == errs.ActualExpected {
			rendered = right
		}
		reported = &errs.InfiniteType{Hint: hint, Rendered: rendered}
	default:
		reason := p.Reason
		if reason != nil && p.Orientation == errs.ActualExpected {
			reason = errs.FlipReason(reason)
		}
		reported = &errs.Mismatch{Hint: hint, Left: left, Right: right, Reason: reason}
	}
	u.state.AddError(region, reported)
	return reported
}

// guardedUnify is the recursion entry used both at the top level and for
// every structural child comparison ("subUnify" in the rule descriptions
// below): it short-circuits on already-equivalent variables, otherwise
// builds a ctx from the live descriptors and dispatches into actuallyUnify.
func (u *Unifier) guardedUnify(o errs.Orientation, a, b types.Variable) *errs.Problem {
	g := u.state.Graph
	if g.Equivalent(a, b) {
		return nil
	}
	c := ctx{
		orientation: o,
		var1:        a,
		var2:        b,
		desc1:       g.Descriptor(a),
		desc2:       g.Descriptor(b),
	}
	return u.actuallyUnify(c)
}

// subUnify is guardedUnify, named the way structural recursion invokes it.
func (u *Unifier) subUnify(o errs.Orientation, a, b types.Variable) *errs.Problem {
	return u.guardedUnify(o, a, b)
}

// merge writes content into the shared root of c.var1 and c.var2.
func (u *Unifier) merge(c ctx, content types.Content) types.Variable {
	return u.state.Merge(c.var1, c.var2, content)
}

// fresh allocates a new variable at rank = min(rank1, rank2) and registers
// it in the session, the scratch variable the record rules (tail splits)
// need without directly merging c's two variables.
func (u *Unifier) fresh(c ctx, content types.Content) types.Variable {
	g := u.state.Graph
	rank := g.Descriptor(c.var1).Rank
	if r2 := g.Descriptor(c.var2).Rank; r2 < rank {
		rank = r2
	}
	return u.state.Fresh(content, rank)
}

func (u *Unifier) actuallyUnify(c ctx) *errs.Problem {
	switch content1 := c.desc1.Content.(type) {
	case types.FlexVar:
		return u.unifyFlexVar(c)
	case types.FlexSuper:
		return u.unifyFlexSuper(c, content1)
	case types.RigidVar:
		return u.unifyRigid(c, content1.Name, nil)
	case types.RigidSuper:
		super := content1.Super
		return u.unifyRigid(c, content1.Name, &super)
	case types.Alias:
		return u.unifyAlias(c, content1)
	case types.Structure:
		return u.unifyStructure(c, content1)
	case types.Error:
		return nil
	default:
		return u.mismatch(c, nil)
	}
}

// unifyFlexVar implements the absorbing rule: a bare flex variable merges
// with whatever the other side is, unless that side is already Error. This
// single case covers every pairing described from the flex-var side across
// the super, rigid, alias, and structure rules, since all of them agree that
// a plain flex variable simply becomes the other content.
func (u *Unifier) unifyFlexVar(c ctx) *errs.Problem {
	if _, ok := c.desc2.Content.(types.Error); ok {
		return nil
	}
	u.merge(c, c.desc2.Content)
	return nil
}
