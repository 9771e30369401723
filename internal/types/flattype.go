package types

// FlatType is the closed sum of concrete type shapes a Structure content can
// carry: data constructor applications, curried function arrows, and the
// two record shapes (closed empty row, open row with a tail variable).
type FlatType interface {
	flatTypeNode()
}

// App1 is a data constructor applied to arguments — this covers ordinary
// nominal applications (List a, Result e a, ...) and, when Ctor is a tuple
// name recognized by internal/names.IsTuple, tuples.
type App1 struct {
	Ctor string
	Args []Variable
}

func (App1) flatTypeNode() {}

// Fun1 is a single curried function arrow; arity is recovered by walking the
// right spine (see internal/unify's collectArgs).
type Fun1 struct {
	Arg    Variable
	Result Variable
}

func (Fun1) flatTypeNode() {}

// EmptyRecord1 is the closed empty row, `{}`.
type EmptyRecord1 struct{}

func (EmptyRecord1) flatTypeNode() {}

// Record1 is a row with known fields and a tail variable. The tail may
// itself resolve to another Record1, to EmptyRecord1, or remain flex.
type Record1 struct {
	Fields map[string]Variable
	Ext    Variable
}

func (Record1) flatTypeNode() {}
