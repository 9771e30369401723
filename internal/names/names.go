// Package names is the canonical-name collaborator: primitive and tuple name
// comparisons the unifier needs but does not own.
package names

// Canonical constructor names the unifier compares content against.
const (
	Int    = "Int"
	Float  = "Float"
	String = "String"
	Char   = "Char"
	List   = "List"
)

// IsPrim reports whether name is one of the built-in atomic constructors the
// super lattice cares about.
func IsPrim(name string) bool {
	switch name {
	case Int, Float, String, Char:
		return true
	default:
		return false
	}
}

// tuplePrefix is the canonical constructor-name prefix used for tuple types
// (App1{Ctor: "Tuple2", ...}, App1{Ctor: "Tuple3", ...}, ...), naming tuples
// by arity.
const tuplePrefix = "Tuple"

// IsTuple reports whether name is a canonical tuple constructor name.
func IsTuple(name string) bool {
	if len(name) <= len(tuplePrefix) || name[:len(tuplePrefix)] != tuplePrefix {
		return false
	}
	rest := name[len(tuplePrefix):]
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
