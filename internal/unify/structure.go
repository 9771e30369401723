package unify

import (
	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/names"
	"github.com/fluxtype/unify/internal/types"
)

// unifyStructure handles Structure(flat) on the left.
func (u *Unifier) unifyStructure(c ctx, s types.Structure) *errs.Problem {
	switch content2 := c.desc2.Content.(type) {
	case types.Error:
		return nil
	case types.FlexVar:
		u.merge(c, s)
		return nil
	case types.FlexSuper:
		return u.unifyFlexSuperStructure(c.reorient(), content2.Super, s.Flat)
	case types.RigidVar:
		return u.tooGeneric(c, content2.Name, nil, flatTypeToSpecificThing(s.Flat))
	case types.RigidSuper:
		super := content2.Super
		return u.tooGeneric(c, content2.Name, &super, flatTypeToSpecificThing(s.Flat))
	case types.Alias:
		return u.subUnify(c.orientation, c.var1, content2.RealVar)
	case types.Structure:
		return u.unifyStructurePair(c, s.Flat, content2.Flat)
	default:
		return u.mismatch(c, nil)
	}
}

func (u *Unifier) unifyStructurePair(c ctx, flat1, flat2 types.FlatType) *errs.Problem {
	switch f1 := flat1.(type) {
	case types.App1:
		f2, ok := flat2.(types.App1)
		if !ok {
			return u.mismatch(c, nil)
		}
		if f1.Ctor == f2.Ctor {
			if len(f1.Args) == len(f2.Args) {
				for i := range f1.Args {
					if p := u.subUnify(c.orientation, f1.Args[i], f2.Args[i]); p != nil {
						return p
					}
				}
				u.merge(c, types.Structure{Flat: f1})
				return nil
			}
			return u.mismatch(c, nil)
		}
		if isIntFloat(f1.Ctor, f2.Ctor) {
			return u.mismatch(c, errs.IntFloat{})
		}
		return u.mismatch(c, nil)

	case types.Fun1:
		f2, ok := flat2.(types.Fun1)
		if !ok {
			return u.mismatch(c, nil)
		}
		if p := u.subUnify(c.orientation, f1.Arg, f2.Arg); p != nil {
			return p
		}
		if p := u.subUnify(c.orientation, f1.Result, f2.Result); p != nil {
			return p
		}
		u.merge(c, types.Structure{Flat: f1})
		return nil

	case types.EmptyRecord1:
		switch flat2.(type) {
		case types.EmptyRecord1:
			u.merge(c, types.Structure{Flat: types.EmptyRecord1{}})
			return nil
		case types.Record1:
			return u.unifyRecords(c)
		default:
			return u.mismatch(c, nil)
		}

	case types.Record1:
		switch flat2.(type) {
		case types.Record1, types.EmptyRecord1:
			return u.unifyRecords(c)
		default:
			return u.mismatch(c, nil)
		}

	default:
		return u.mismatch(c, nil)
	}
}

func isIntFloat(a, b string) bool {
	return (a == names.Int && b == names.Float) || (a == names.Float && b == names.Int)
}
