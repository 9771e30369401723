package errs

// Orientation tracks which side of a constraint is the user's "expected"
// type versus the inferred "actual" type, so messages can correctly say
// which side is which and so specific reasons can be flipped back to the
// caller's original frame when the recursive rules swapped sides internally.
type Orientation int

const (
	// ExpectedActual is the orientation every top-level Unify call starts in:
	// var1 is expected, var2 is actual.
	ExpectedActual Orientation = iota
	// ActualExpected is the orientation after an odd number of reorient()
	// calls: var1 is actual, var2 is expected.
	ActualExpected
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == ExpectedActual {
		return ActualExpected
	}
	return ExpectedActual
}

// ProblemKind is the three-case local failure tag: a problem is either a
// plain mismatch with no specific reason (Typical), a mismatch with a
// specific named Reason (Special), or an infinite-type detection (Infinite).
type ProblemKind int

const (
	KindTypical ProblemKind = iota
	KindSpecial
	KindInfinite
)

// Problem is the local, recoverable failure value threaded through the
// unifier's recursive calls. It is caught only at Unify's top frame and at
// the two explicit partial-recovery points (the argument-spine fallback in
// mismatch, and the per-field loop in unifySharedFields).
type Problem struct {
	Kind ProblemKind
	// Reason is populated only when Kind == KindSpecial.
	Reason Reason
	// Orientation records the orientation in effect when this Problem was
	// raised, so the top-level report site can flip Reason exactly once.
	Orientation Orientation
}

func (p *Problem) Error() string {
	switch p.Kind {
	case KindInfinite:
		return "infinite type"
	case KindSpecial:
		return "type mismatch"
	default:
		return "type mismatch"
	}
}

// Typical builds a plain mismatch problem with no specific reason.
func Typical(o Orientation) *Problem {
	return &Problem{Kind: KindTypical, Orientation: o}
}

// SpecialProblem builds a mismatch problem carrying a specific reason.
func SpecialProblem(o Orientation, r Reason) *Problem {
	return &Problem{Kind: KindSpecial, Reason: r, Orientation: o}
}

// InfiniteProblem builds an occurs-check failure.
func InfiniteProblem() *Problem {
	return &Problem{Kind: KindInfinite}
}
