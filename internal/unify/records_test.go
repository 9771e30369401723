package unify

import (
	"testing"

	"github.com/fluxtype/unify/internal/types"
)

func TestGatherFieldsFollowsExtensionChain(t *testing.T) {
	u, st := newTestUnifier()
	b := atom(st, "Bool")
	empty := st.Fresh(types.Structure{Flat: types.EmptyRecord1{}}, 0)
	inner := st.Fresh(types.Structure{Flat: types.Record1{
		Fields: map[string]types.Variable{"b": b}, Ext: empty,
	}}, 0)
	a := atom(st, "Int")
	outer := st.Fresh(types.Structure{Flat: types.Record1{
		Fields: map[string]types.Variable{"a": a}, Ext: inner,
	}}, 0)

	fields, tail, closed := u.gatherFields(outer)
	if len(fields) != 2 {
		t.Fatalf("gathered %d fields, want 2", len(fields))
	}
	if _, ok := fields["a"]; !ok {
		t.Errorf("missing field a")
	}
	if _, ok := fields["b"]; !ok {
		t.Errorf("missing field b")
	}
	if !closed {
		t.Errorf("closed = false, want true (chain ends in EmptyRecord1)")
	}
	if tail != st.Graph.Find(empty) {
		t.Errorf("tail = %v, want the empty record's representative", tail)
	}
}

func TestGatherFieldsOpenTail(t *testing.T) {
	u, st := newTestUnifier()
	a := atom(st, "Int")
	tailVar := st.Fresh(types.FlexVar{}, 0)
	rec := st.Fresh(types.Structure{Flat: types.Record1{
		Fields: map[string]types.Variable{"a": a}, Ext: tailVar,
	}}, 0)

	_, tail, closed := u.gatherFields(rec)
	if closed {
		t.Errorf("closed = true, want false (tail is a bare flex variable)")
	}
	if tail != st.Graph.Find(tailVar) {
		t.Errorf("tail = %v, want tailVar's representative", tail)
	}
}
