package unify

import (
	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/types"
)

// unifyRigid handles both RigidVar(name) and RigidSuper(*super, name) on the
// left; super is nil for a plain RigidVar.
func (u *Unifier) unifyRigid(c ctx, name string, super *types.Super) *errs.Problem {
	switch content2 := c.desc2.Content.(type) {
	case types.Error:
		return nil
	case types.FlexVar:
		if super != nil {
			u.merge(c, types.RigidSuper{Super: *super, Name: name})
		} else {
			u.merge(c, types.RigidVar{Name: name})
		}
		return nil
	case types.FlexSuper:
		if super != nil && combineRigidSupers(*super, content2.Super) {
			u.merge(c, types.RigidSuper{Super: *super, Name: name})
			return nil
		}
		return u.tooGeneric(c, name, super, errs.SpecificSuper{Super: content2.Super})
	case types.RigidVar:
		return u.mismatch(c, errs.RigidClash{Left: name, Right: content2.Name})
	case types.RigidSuper:
		return u.mismatch(c, errs.RigidClash{Left: name, Right: content2.Name})
	case types.Alias:
		return u.tooGeneric(c, name, super, errs.SpecificType{Name: content2.Name})
	case types.Structure:
		return u.tooGeneric(c, name, super, flatTypeToSpecificThing(content2.Flat))
	default:
		return u.mismatch(c, nil)
	}
}

func (u *Unifier) tooGeneric(c ctx, name string, super *types.Super, specific errs.Specific) *errs.Problem {
	if super != nil {
		return u.mismatch(c, errs.RigidSuperTooGeneric{Super: *super, Name: name, Specific: specific})
	}
	return u.mismatch(c, errs.RigidVarTooGeneric{Name: name, Specific: specific})
}

func flatTypeToSpecificThing(flat types.FlatType) errs.Specific {
	switch f := flat.(type) {
	case types.Fun1:
		return errs.SpecificFunction{}
	case types.EmptyRecord1:
		return errs.SpecificRecord{}
	case types.Record1:
		return errs.SpecificRecord{}
	case types.App1:
		return errs.SpecificType{Name: f.Ctor}
	default:
		return errs.SpecificType{Name: "?"}
	}
}
