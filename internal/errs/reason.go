package errs

import "github.com/fluxtype/unify/internal/types"

// Reason is the closed taxonomy of specific mismatch reasons a unification
// failure can carry, in addition to the plain "Typical" (no reason) case.
type Reason interface {
	reasonNode()
}

// FieldReason is one entry of a BadFields report: the offending field name
// and, if the field's own unification produced a specific reason, that
// reason (nil means a plain mismatch on that field).
type FieldReason struct {
	Field  string
	Reason Reason
}

// BadFields reports that one or more shared record fields failed to unify.
// Every shared field is unified independently rather than short-circuiting
// on the first failure, so this can name several bad fields at once.
type BadFields struct{ Fields []FieldReason }

func (BadFields) reasonNode() {}

// MessyFields reports that a closed row is missing fields the other side
// requires.
type MessyFields struct {
	Shared   []string
	OnlyLeft []string
	OnlyRight []string
}

func (MessyFields) reasonNode() {}

// IntFloat reports the Int/Float confusion special-case.
type IntFloat struct{}

func (IntFloat) reasonNode() {}

// TooLongComparableTuple reports a tuple longer than the 6-element
// Comparable cap.
type TooLongComparableTuple struct{ Len int }

func (TooLongComparableTuple) reasonNode() {}

// MissingArgs reports a function-arity mismatch recovered via the
// argument-spine fallback.
type MissingArgs struct{ Count int }

func (MissingArgs) reasonNode() {}

// RigidClash reports two differently-named rigid variables colliding.
type RigidClash struct{ Left, Right string }

func (RigidClash) reasonNode() {}

// NotPartOfSuper reports a concrete type failing a super-class membership
// check.
type NotPartOfSuper struct{ Super types.Super }

func (NotPartOfSuper) reasonNode() {}

// RigidVarTooGeneric reports an unconstrained rigid variable colliding with
// something more specific than a bare flex variable.
type RigidVarTooGeneric struct {
	Name     string
	Specific Specific
}

func (RigidVarTooGeneric) reasonNode() {}

// RigidSuperTooGeneric reports a super-constrained rigid variable colliding
// with something its constraint cannot dominate.
type RigidSuperTooGeneric struct {
	Super    types.Super
	Name     string
	Specific Specific
}

func (RigidSuperTooGeneric) reasonNode() {}

// FlipReason is the structural, total orientation-flip transform. It is
// applied whenever a Special(reason) bubbles out of the ActualExpected
// orientation, so the final message names "expected" and "actual" correctly
// from the user's point of view.
//
// FlipReason(FlipReason(r)) == r, except that BadFields's recursive flip
// only round-trips up to the identity of nested reasons that themselves
// round-trip — this is inherited, deliberate behavior, not a bug to
// silently fix.
func FlipReason(r Reason) Reason {
	switch r := r.(type) {
	case BadFields:
		flipped := make([]FieldReason, len(r.Fields))
		for i, f := range r.Fields {
			nested := f.Reason
			if nested != nil {
				nested = FlipReason(nested)
			}
			flipped[i] = FieldReason{Field: f.Field, Reason: nested}
		}
		return BadFields{Fields: flipped}
	case MessyFields:
		return MessyFields{Shared: r.Shared, OnlyLeft: r.OnlyRight, OnlyRight: r.OnlyLeft}
	case RigidClash:
		return RigidClash{Left: r.Right, Right: r.Left}
	default:
		return r
	}
}
