package solver

import (
	"testing"

	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/types"
)

func TestNewStateHasRandomSessionID(t *testing.T) {
	a := NewState()
	b := NewState()
	if a.SessionID == b.SessionID {
		t.Fatalf("two sessions must not share a session id")
	}
}

func TestFreshGrowsRegistry(t *testing.T) {
	s := NewState()
	v1 := s.Fresh(types.FlexVar{}, 0)
	v2 := s.Fresh(types.FlexVar{}, 0)

	reg := s.Registry()
	if len(reg) != 2 || reg[0] != v1 || reg[1] != v2 {
		t.Fatalf("registry = %v, want [%v %v]", reg, v1, v2)
	}
}

func TestAddErrorAccumulatesInOrder(t *testing.T) {
	s := NewState()
	r1 := Region{File: "a.fx", Line: 1, Column: 1}
	r2 := Region{File: "a.fx", Line: 2, Column: 5}

	e1 := &errs.Mismatch{Hint: "first"}
	e2 := &errs.InfiniteType{Hint: "second"}

	s.AddError(r1, e1)
	s.AddError(r2, e2)

	if !s.HasErrors() {
		t.Fatalf("expected HasErrors true after AddError")
	}
	got := s.Errors()
	if len(got) != 2 {
		t.Fatalf("len(Errors()) = %d, want 2", len(got))
	}
	if got[0].Region != r1 || got[0].Err != errs.ReportedError(e1) {
		t.Errorf("first entry = %+v, want region %v and err %v", got[0], r1, e1)
	}
	if got[1].Region != r2 || got[1].Err != errs.ReportedError(e2) {
		t.Errorf("second entry = %+v, want region %v and err %v", got[1], r2, e2)
	}
}

func TestMergeAndHealDelegateToGraph(t *testing.T) {
	s := NewState()
	a := s.Fresh(types.FlexVar{}, 0)
	b := s.Fresh(types.FlexVar{}, 0)

	root := s.Merge(a, b, types.RigidVar{Name: "a"})
	if !s.Graph.Equivalent(a, b) {
		t.Fatalf("Merge must unify a and b in the underlying graph")
	}
	if _, ok := s.Graph.ContentOf(root).(types.RigidVar); !ok {
		t.Fatalf("Merge must install the given content at the surviving root")
	}

	c := s.Fresh(types.FlexVar{}, 0)
	d := s.Fresh(types.FlexVar{}, 0)
	s.Heal(c, d, "test healing")
	if !s.Graph.Equivalent(c, d) {
		t.Fatalf("Heal must unify c and d")
	}
	if _, ok := s.Graph.ContentOf(s.Graph.Find(c)).(types.Error); !ok {
		t.Fatalf("Heal must install an Error content at the healed representative")
	}
}
