package unify

import (
	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/occurs"
	"github.com/fluxtype/unify/internal/types"
)

// mismatch is the canonical failure-construction step every rule function
// routes through. It first occurs-checks both sides of c — a structural
// mutation earlier in the same top-level call can have made one of them
// self-referential before the mismatch was discovered — and reports
// Infinite if so. Otherwise it peels the right spine of curried function
// arrows from both sides; if both sides are functions and the spines differ
// in length it best-effort unifies the overlap (discarding any further
// failures from that pass, so downstream error messages still benefit from
// whatever did line up) and reports a MissingArgs reason for the difference.
// When the spines agree in length, or either side is not a function, it
// reports reason directly.
func (u *Unifier) mismatch(c ctx, reason errs.Reason) *errs.Problem {
	g := u.state.Graph
	if occurs.Occurs(g, c.var1) || occurs.Occurs(g, c.var2) {
		return errs.InfiniteProblem()
	}

	args1 := u.collectArgs(c.var1)
	args2 := u.collectArgs(c.var2)

	if len(args1) == len(args2) || len(args1) == 0 || len(args2) == 0 {
		if reason == nil {
			return errs.Typical(c.orientation)
		}
		return errs.SpecialProblem(c.orientation, reason)
	}

	n := len(args1)
	if len(args2) < n {
		n = len(args2)
	}
	for i := 0; i < n; i++ {
		u.subUnify(c.orientation, args1[i], args2[i])
	}

	diff := len(args1) - len(args2)
	if diff < 0 {
		diff = -diff
	}
	return errs.SpecialProblem(c.orientation, errs.MissingArgs{Count: diff})
}

// collectArgs peels Fun1 nodes from v's representative, following the
// result spine rightward, and returns every argument variable encountered.
func (u *Unifier) collectArgs(v types.Variable) []types.Variable {
	g := u.state.Graph
	var args []types.Variable
	cur := g.Find(v)
	for {
		s, ok := g.ContentOf(cur).(types.Structure)
		if !ok {
			return args
		}
		fn, ok := s.Flat.(types.Fun1)
		if !ok {
			return args
		}
		args = append(args, fn.Arg)
		cur = g.Find(fn.Result)
	}
}
