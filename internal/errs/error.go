package errs

import "fmt"

// RenderedType is anything the separate renderer collaborator (internal/render)
// can hand back for embedding in a user-facing error. It is declared here
// rather than imported from internal/render so that package stays a leaf and
// errs never depends on it — render.SrcType satisfies this interface
// structurally just by having a String method.
type RenderedType interface {
	String() string
}

// ReportedError is a structured error appended to the solver state. It
// carries no prose — callers render it however they like.
type ReportedError interface {
	error
	reportedErrorNode()
}

// Mismatch is a unification failure where both sides produced a renderable
// type. Reason is nil for a plain ("Typical") mismatch.
type Mismatch struct {
	Hint   string
	Left   RenderedType
	Right  RenderedType
	Reason Reason
}

func (m *Mismatch) reportedErrorNode() {}

func (m *Mismatch) Error() string {
	if m.Reason == nil {
		return fmt.Sprintf("%s: expected %s but got %s", m.Hint, m.Left, m.Right)
	}
	return fmt.Sprintf("%s: expected %s but got %s (%s)", m.Hint, m.Left, m.Right, describeReason(m.Reason))
}

// InfiniteType is a unification failure where the occurs check tripped.
type InfiniteType struct {
	Hint     string
	Rendered RenderedType
}

func (e *InfiniteType) reportedErrorNode() {}

func (e *InfiniteType) Error() string {
	return fmt.Sprintf("%s: infinite type %s", e.Hint, e.Rendered)
}

func describeReason(r Reason) string {
	switch r := r.(type) {
	case BadFields:
		return fmt.Sprintf("bad fields: %d", len(r.Fields))
	case MessyFields:
		return "messy fields"
	case IntFloat:
		return "Int/Float confusion"
	case TooLongComparableTuple:
		return fmt.Sprintf("comparable tuple too long: %d", r.Len)
	case MissingArgs:
		return fmt.Sprintf("missing %d argument(s)", r.Count)
	case RigidClash:
		return fmt.Sprintf("rigid type variables %q and %q cannot unify", r.Left, r.Right)
	case NotPartOfSuper:
		return fmt.Sprintf("not part of %s", r.Super)
	case RigidVarTooGeneric:
		return fmt.Sprintf("rigid variable %q is too generic", r.Name)
	case RigidSuperTooGeneric:
		return fmt.Sprintf("rigid variable %q (%s) is too generic", r.Name, r.Super)
	default:
		return "mismatch"
	}
}
