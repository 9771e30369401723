package errs

import "github.com/fluxtype/unify/internal/types"

// Specific names what a too-generic rigid variable collided with, for
// RigidVarTooGeneric / RigidSuperTooGeneric messages.
type Specific interface {
	specificNode()
}

// SpecificSuper names a super-class the rigid side could not satisfy.
type SpecificSuper struct{ Super types.Super }

func (SpecificSuper) specificNode() {}

// SpecificType names a concrete nominal type (an alias or an atomic App1).
type SpecificType struct{ Name string }

func (SpecificType) specificNode() {}

// SpecificFunction marks a function-arrow collision.
type SpecificFunction struct{}

func (SpecificFunction) specificNode() {}

// SpecificRecord marks a record collision.
type SpecificRecord struct{}

func (SpecificRecord) specificNode() {}
