package unify

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/types"
)

// Each entry below builds the same expected/actual pair its corresponding
// TestS*/TestSN test function does, for a table-driven cross-check against
// the archived description + expected-reason-tag in testdata/*.txtar. The
// archives exist so the nine end-to-end scenarios have a form a reader can
// open and skim without reading Go.
var scenarioBuilders = map[string]func() (u *Unifier, st interface{ HasErrors() bool }, err error){
	"s1_identical_atoms": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		a, b := atom(st, "Int"), atom(st, "Int")
		return u, st, u.Unify("s1", here, a, b)
	},
	"s2_int_float": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		a, b := atom(st, "Int"), atom(st, "Float")
		return u, st, u.Unify("s2", here, a, b)
	},
	"s3_list_comparable": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		elem := st.Fresh(types.FlexSuper{Super: types.SuperComparable}, 0)
		expected := st.Fresh(types.Structure{Flat: types.App1{Ctor: "List", Args: []types.Variable{elem}}}, 0)
		i1, i2 := atom(st, "Int"), atom(st, "Int")
		fn := st.Fresh(types.Structure{Flat: types.Fun1{Arg: i1, Result: i2}}, 0)
		actual := st.Fresh(types.Structure{Flat: types.App1{Ctor: "List", Args: []types.Variable{fn}}}, 0)
		return u, st, u.Unify("s3", here, expected, actual)
	},
	"s4_tuple_too_long": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		args := make([]types.Variable, 7)
		for i := range args {
			args[i] = atom(st, "Int")
		}
		tuple := st.Fresh(types.Structure{Flat: types.App1{Ctor: "Tuple7", Args: args}}, 0)
		comparable := st.Fresh(types.FlexSuper{Super: types.SuperComparable}, 0)
		return u, st, u.Unify("s4", here, comparable, tuple)
	},
	"s5_bad_field": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		mkRecord := func(ageCtor string) types.Variable {
			name := atom(st, "String")
			age := atom(st, ageCtor)
			empty := st.Fresh(types.Structure{Flat: types.EmptyRecord1{}}, 0)
			return st.Fresh(types.Structure{Flat: types.Record1{
				Fields: map[string]types.Variable{"name": name, "age": age}, Ext: empty,
			}}, 0)
		}
		return u, st, u.Unify("s5", here, mkRecord("Int"), mkRecord("Bool"))
	},
	"s6_messy_fields": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		x1 := atom(st, "Int")
		empty1 := st.Fresh(types.Structure{Flat: types.EmptyRecord1{}}, 0)
		left := st.Fresh(types.Structure{Flat: types.Record1{Fields: map[string]types.Variable{"x": x1}, Ext: empty1}}, 0)
		x2, y2 := atom(st, "Int"), atom(st, "Bool")
		empty2 := st.Fresh(types.Structure{Flat: types.EmptyRecord1{}}, 0)
		right := st.Fresh(types.Structure{Flat: types.Record1{Fields: map[string]types.Variable{"x": x2, "y": y2}, Ext: empty2}}, 0)
		return u, st, u.Unify("s6", here, left, right)
	},
	"s7_flex_arrow": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		a := st.Fresh(types.FlexVar{}, 0)
		expected := st.Fresh(types.Structure{Flat: types.Fun1{Arg: a, Result: a}}, 0)
		i, b := atom(st, "Int"), atom(st, "Bool")
		actual := st.Fresh(types.Structure{Flat: types.Fun1{Arg: i, Result: b}}, 0)
		return u, st, u.Unify("s7", here, expected, actual)
	},
	"s8_rigid_clash": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		a := st.Fresh(types.RigidVar{Name: "a"}, 0)
		b := st.Fresh(types.RigidVar{Name: "b"}, 0)
		return u, st, u.Unify("s8", here, a, b)
	},
	"s9_super_join": func() (*Unifier, interface{ HasErrors() bool }, error) {
		u, st := newTestUnifier()
		a := st.Fresh(types.FlexSuper{Super: types.SuperComparable}, 0)
		b := st.Fresh(types.FlexSuper{Super: types.SuperAppendable}, 0)
		return u, st, u.Unify("s9", here, a, b)
	},
}

// tagFor classifies the outcome of a scenario the same way its want line
// names it: "ok" for success, "plain" for a Typical mismatch (nil Reason),
// or the Reason's type name otherwise.
func tagFor(err error) string {
	if err == nil {
		return "ok"
	}
	mm, ok := err.(*errs.Mismatch)
	if !ok {
		return fmt.Sprintf("%T", err)
	}
	if mm.Reason == nil {
		return "plain"
	}
	return reflect.TypeOf(mm.Reason).Name()
}

func TestTxtarScenariosMatchWantTag(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}
	checked := 0
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".txtar") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".txtar")
		t.Run(name, func(t *testing.T) {
			raw, err := os.ReadFile(filepath.Join("testdata", entry.Name()))
			if err != nil {
				t.Fatalf("reading %s: %v", entry.Name(), err)
			}
			archive := txtar.Parse(raw)
			var want string
			for _, f := range archive.Files {
				if f.Name == "want" {
					want = strings.TrimSpace(string(f.Data))
				}
			}
			if want == "" {
				t.Fatalf("%s has no 'want' file", entry.Name())
			}
			build, ok := scenarioBuilders[name]
			if !ok {
				t.Fatalf("no scenario builder registered for %s", name)
			}
			_, _, gotErr := build()
			if got := tagFor(gotErr); got != want {
				t.Errorf("scenario %s: outcome tag = %q, want %q (archive says: %s)",
					name, got, want, strings.TrimSpace(string(archive.Comment)))
			}
		})
		checked++
	}
	if checked != len(scenarioBuilders) {
		t.Fatalf("checked %d archives, want %d (registry and testdata drifted apart)", checked, len(scenarioBuilders))
	}
}
