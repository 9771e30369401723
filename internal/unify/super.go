package unify

import (
	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/names"
	"github.com/fluxtype/unify/internal/occurs"
	"github.com/fluxtype/unify/internal/types"
)

// comboTable encodes the super-class join lattice: comboTable[a][b] is the
// combined super, or -1 for a clash. Built once as a flat table rather than
// nested conditionals, since the lattice has exactly four values.
var comboTable = [4][4]int{
	{int(types.SuperNumber), int(types.SuperNumber), -1, -1},
	{int(types.SuperNumber), int(types.SuperComparable), int(types.SuperCompAppend), int(types.SuperCompAppend)},
	{-1, int(types.SuperCompAppend), int(types.SuperAppendable), int(types.SuperCompAppend)},
	{-1, int(types.SuperCompAppend), int(types.SuperCompAppend), int(types.SuperCompAppend)},
}

func combineFlexSupers(a, b types.Super) (types.Super, bool) {
	r := comboTable[a][b]
	if r < 0 {
		return 0, false
	}
	return types.Super(r), true
}

// combineRigidSupers reports whether rigid dominates flex in the lattice:
// equal, or (Number, Comparable), or (CompAppend, Comparable), or
// (CompAppend, Appendable).
func combineRigidSupers(rigid, flex types.Super) bool {
	if rigid == flex {
		return true
	}
	switch {
	case rigid == types.SuperNumber && flex == types.SuperComparable:
		return true
	case rigid == types.SuperCompAppend && flex == types.SuperComparable:
		return true
	case rigid == types.SuperCompAppend && flex == types.SuperAppendable:
		return true
	}
	return false
}

func atomMatchesSuper(super types.Super, name string) bool {
	switch super {
	case types.SuperNumber:
		return name == names.Int || name == names.Float
	case types.SuperComparable:
		return name == names.String || name == names.Int || name == names.Float || name == names.Char
	case types.SuperAppendable, types.SuperCompAppend:
		return name == names.String
	default:
		return false
	}
}

func (u *Unifier) unifyFlexSuper(c ctx, fs types.FlexSuper) *errs.Problem {
	switch content2 := c.desc2.Content.(type) {
	case types.Error:
		return nil
	case types.FlexVar:
		u.merge(c, types.FlexSuper{Super: fs.Super})
		return nil
	case types.RigidVar:
		return u.mismatch(c, errs.RigidVarTooGeneric{Name: content2.Name, Specific: errs.SpecificSuper{Super: fs.Super}})
	case types.RigidSuper:
		if combineRigidSupers(content2.Super, fs.Super) {
			u.merge(c, types.RigidSuper{Super: content2.Super, Name: content2.Name})
			return nil
		}
		return u.mismatch(c, errs.RigidSuperTooGeneric{Super: content2.Super, Name: content2.Name, Specific: errs.SpecificSuper{Super: fs.Super}})
	case types.FlexSuper:
		result, ok := combineFlexSupers(fs.Super, content2.Super)
		if !ok {
			return u.mismatch(c, nil)
		}
		u.merge(c, types.FlexSuper{Super: result})
		return nil
	case types.Alias:
		return u.subUnify(c.orientation, c.var1, content2.RealVar)
	case types.Structure:
		return u.unifyFlexSuperStructure(c, fs.Super, content2.Flat)
	default:
		return u.mismatch(c, nil)
	}
}

// unifyFlexSuperStructure enforces super-lattice membership of concrete
// types. c.var1 must be the FlexSuper side and c.var2 the Structure side
// (callers reorient first if the dispatch order was the other way around).
func (u *Unifier) unifyFlexSuperStructure(c ctx, super types.Super, flat types.FlatType) *errs.Problem {
	app, ok := flat.(types.App1)
	if !ok {
		return u.mismatch(c, errs.NotPartOfSuper{Super: super})
	}

	switch {
	case len(app.Args) == 0:
		if atomMatchesSuper(super, app.Ctor) {
			u.merge(c, types.Structure{Flat: app})
			return nil
		}
		return u.mismatch(c, errs.NotPartOfSuper{Super: super})

	case app.Ctor == names.List && len(app.Args) == 1:
		switch super {
		case types.SuperAppendable:
			u.merge(c, types.Structure{Flat: app})
			return nil
		case types.SuperComparable, types.SuperCompAppend:
			if occurs.Occurs(u.state.Graph, c.var2) {
				return errs.InfiniteProblem()
			}
			u.merge(c, types.Structure{Flat: app})
			return u.unifyComparableRecursive(c.orientation, app.Args[0])
		default:
			return u.mismatch(c, errs.NotPartOfSuper{Super: super})
		}

	case names.IsTuple(app.Ctor):
		if super != types.SuperComparable {
			return u.mismatch(c, errs.NotPartOfSuper{Super: super})
		}
		if len(app.Args) > 6 {
			return u.mismatch(c, errs.TooLongComparableTuple{Len: len(app.Args)})
		}
		if occurs.Occurs(u.state.Graph, c.var2) {
			return errs.InfiniteProblem()
		}
		u.merge(c, types.Structure{Flat: app})
		for _, arg := range app.Args {
			if p := u.unifyComparableRecursive(c.orientation, arg); p != nil {
				return p
			}
		}
		return nil

	default:
		return u.mismatch(c, errs.NotPartOfSuper{Super: super})
	}
}

// unifyComparableRecursive forces v to itself satisfy Comparable, the helper
// list and tuple element checks recurse through.
func (u *Unifier) unifyComparableRecursive(o errs.Orientation, v types.Variable) *errs.Problem {
	g := u.state.Graph
	rank := g.Descriptor(g.Find(v)).Rank
	fresh := u.state.Fresh(types.FlexSuper{Super: types.SuperComparable}, rank)
	return u.guardedUnify(o, fresh, v)
}
