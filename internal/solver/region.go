package solver

import "fmt"

// Region is the pre-computed source span the solver attaches to a
// diagnostic. Spec.md treats the region model as an external collaborator
// ("regions arrive pre-computed") — this is the minimal concrete triple the
// rest of the engine needs to compile against, grounded on the line/column
// convention a lexer/parser attaches to every token.
type Region struct {
	File   string
	Line   int
	Column int
}

func (r Region) String() string {
	if r.File == "" {
		return fmt.Sprintf("%d:%d", r.Line, r.Column)
	}
	return fmt.Sprintf("%s:%d:%d", r.File, r.Line, r.Column)
}
