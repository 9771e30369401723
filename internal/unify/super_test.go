package unify

import "github.com/fluxtype/unify/internal/types"
import "testing"

func TestCombineFlexSupersTable(t *testing.T) {
	cases := []struct {
		a, b, want types.Super
		ok         bool
	}{
		{types.SuperNumber, types.SuperNumber, types.SuperNumber, true},
		{types.SuperNumber, types.SuperComparable, types.SuperNumber, true},
		{types.SuperNumber, types.SuperAppendable, 0, false},
		{types.SuperComparable, types.SuperAppendable, types.SuperCompAppend, true},
		{types.SuperAppendable, types.SuperAppendable, types.SuperAppendable, true},
		{types.SuperCompAppend, types.SuperNumber, 0, false},
	}
	for _, c := range cases {
		got, ok := combineFlexSupers(c.a, c.b)
		if ok != c.ok {
			t.Errorf("combineFlexSupers(%s, %s) ok = %v, want %v", c.a, c.b, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("combineFlexSupers(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestCombineRigidSupers(t *testing.T) {
	cases := []struct {
		rigid, flex types.Super
		want        bool
	}{
		{types.SuperNumber, types.SuperNumber, true},
		{types.SuperNumber, types.SuperComparable, true},
		{types.SuperCompAppend, types.SuperComparable, true},
		{types.SuperCompAppend, types.SuperAppendable, true},
		{types.SuperComparable, types.SuperNumber, false},
		{types.SuperAppendable, types.SuperComparable, false},
	}
	for _, c := range cases {
		if got := combineRigidSupers(c.rigid, c.flex); got != c.want {
			t.Errorf("combineRigidSupers(%s, %s) = %v, want %v", c.rigid, c.flex, got, c.want)
		}
	}
}

func TestAtomMatchesSuper(t *testing.T) {
	if !atomMatchesSuper(types.SuperNumber, "Int") {
		t.Errorf("Int must match Number")
	}
	if atomMatchesSuper(types.SuperNumber, "String") {
		t.Errorf("String must not match Number")
	}
	if !atomMatchesSuper(types.SuperAppendable, "String") {
		t.Errorf("String must match Appendable")
	}
	if atomMatchesSuper(types.SuperAppendable, "Int") {
		t.Errorf("Int must not match Appendable")
	}
}
