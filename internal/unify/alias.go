package unify

import (
	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/types"
)

// unifyAlias handles Alias(name, args, realVar) on the left. Aliases are
// transparent for unification (everything not explicitly named below
// recurses into realVar) but preserved as the installed content on success,
// so error messages and later renders still see the alias name.
func (u *Unifier) unifyAlias(c ctx, a types.Alias) *errs.Problem {
	switch content2 := c.desc2.Content.(type) {
	case types.Error:
		return nil
	case types.FlexVar:
		u.merge(c, a)
		return nil
	case types.Alias:
		if a.Name == content2.Name && len(a.Args) == len(content2.Args) {
			for i := range a.Args {
				if p := u.subUnify(c.orientation, a.Args[i].Var, content2.Args[i].Var); p != nil {
					return p
				}
			}
			u.merge(c, a)
			return nil
		}
		return u.subUnify(c.orientation, a.RealVar, content2.RealVar)
	default:
		return u.subUnify(c.orientation, a.RealVar, c.var2)
	}
}
