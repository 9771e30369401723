package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fluxtype/unify/internal/solver"
	"github.com/fluxtype/unify/internal/types"
)

// Scenario is a single constraint check: unify Expected against Actual and
// report whether the outcome ("ok", "mismatch" or "infinite") matches Want.
// The specific mismatch reason is not compared.
// It is the YAML counterpart of the (expected, actual) pairs exercised by
// the in-package unify tests, kept intentionally small: there is no surface
// syntax here, just a direct encoding of types.Content/FlatType.
type Scenario struct {
	Name     string `yaml:"name"`
	Hint     string `yaml:"hint"`
	Expected *Node  `yaml:"expected"`
	Actual   *Node  `yaml:"actual"`
	Want     string `yaml:"want"` // "ok", "mismatch" or "infinite"
}

// File is the top-level shape of a scenario YAML document: a list of
// independent scenarios, each unified against a fresh solver session.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Node is one position in a scenario's type tree. Exactly one field should
// be set; which one determines the types.Content installed.
type Node struct {
	Var        string      `yaml:"var,omitempty"`        // flex variable, named for sharing within one side
	Rigid      string      `yaml:"rigid,omitempty"`       // rigid variable
	Super      string      `yaml:"super,omitempty"`       // flex variable constrained to a super-class
	RigidSuper *RigidSuper `yaml:"rigidSuper,omitempty"`
	Atom       string      `yaml:"atom,omitempty"` // nullary App1, e.g. "Int"
	App        *App        `yaml:"app,omitempty"`
	Fun        *Fun        `yaml:"fun,omitempty"`
	Record     *Record     `yaml:"record,omitempty"`
	Alias      *AliasNode  `yaml:"alias,omitempty"`
}

type RigidSuper struct {
	Super string `yaml:"super"`
	Name  string `yaml:"name"`
}

type App struct {
	Ctor string  `yaml:"ctor"`
	Args []*Node `yaml:"args"`
}

type Fun struct {
	Arg    *Node `yaml:"arg"`
	Result *Node `yaml:"result"`
}

type Record struct {
	Fields map[string]*Node `yaml:"fields"`
	Tail   *Node            `yaml:"tail"` // nil means closed ({})
}

type AliasNode struct {
	Name string       `yaml:"name"`
	Args []AliasArgIn `yaml:"args"`
	Real *Node        `yaml:"real"`
}

type AliasArgIn struct {
	Name string `yaml:"name"`
	Var  *Node  `yaml:"var"`
}

// LoadFile reads and parses a scenario file from disk.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &f, nil
}

func superByName(name string) (types.Super, error) {
	switch name {
	case "Number":
		return types.SuperNumber, nil
	case "Comparable":
		return types.SuperComparable, nil
	case "Appendable":
		return types.SuperAppendable, nil
	case "CompAppend":
		return types.SuperCompAppend, nil
	default:
		return 0, fmt.Errorf("unknown super class %q", name)
	}
}

// builder allocates variables for one side of a scenario, reusing the same
// variable whenever a named var/rigid node is repeated (so "a -> a" can be
// written as two {var: a} nodes instead of requiring Go-level sharing).
type builder struct {
	st     *solver.State
	rank   int
	byName map[string]types.Variable
}

func newBuilder(st *solver.State, rank int) *builder {
	return &builder{st: st, rank: rank, byName: map[string]types.Variable{}}
}

func (b *builder) build(n *Node) (types.Variable, error) {
	switch {
	case n == nil:
		return 0, fmt.Errorf("nil node")

	case n.Var != "":
		if v, ok := b.byName["var:"+n.Var]; ok {
			return v, nil
		}
		v := b.st.Fresh(types.FlexVar{Name: &n.Var}, b.rank)
		b.byName["var:"+n.Var] = v
		return v, nil

	case n.Rigid != "":
		if v, ok := b.byName["rigid:"+n.Rigid]; ok {
			return v, nil
		}
		v := b.st.Fresh(types.RigidVar{Name: n.Rigid}, b.rank)
		b.byName["rigid:"+n.Rigid] = v
		return v, nil

	case n.Super != "":
		s, err := superByName(n.Super)
		if err != nil {
			return 0, err
		}
		return b.st.Fresh(types.FlexSuper{Super: s}, b.rank), nil

	case n.RigidSuper != nil:
		s, err := superByName(n.RigidSuper.Super)
		if err != nil {
			return 0, err
		}
		return b.st.Fresh(types.RigidSuper{Super: s, Name: n.RigidSuper.Name}, b.rank), nil

	case n.Atom != "":
		return b.st.Fresh(types.Structure{Flat: types.App1{Ctor: n.Atom}}, b.rank), nil

	case n.App != nil:
		args := make([]types.Variable, len(n.App.Args))
		for i, a := range n.App.Args {
			v, err := b.build(a)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return b.st.Fresh(types.Structure{Flat: types.App1{Ctor: n.App.Ctor, Args: args}}, b.rank), nil

	case n.Fun != nil:
		arg, err := b.build(n.Fun.Arg)
		if err != nil {
			return 0, err
		}
		res, err := b.build(n.Fun.Result)
		if err != nil {
			return 0, err
		}
		return b.st.Fresh(types.Structure{Flat: types.Fun1{Arg: arg, Result: res}}, b.rank), nil

	case n.Record != nil:
		fields := make(map[string]types.Variable, len(n.Record.Fields))
		for k, fn := range n.Record.Fields {
			v, err := b.build(fn)
			if err != nil {
				return 0, err
			}
			fields[k] = v
		}
		if n.Record.Tail == nil {
			empty := b.st.Fresh(types.Structure{Flat: types.EmptyRecord1{}}, b.rank)
			return b.st.Fresh(types.Structure{Flat: types.Record1{Fields: fields, Ext: empty}}, b.rank), nil
		}
		tail, err := b.build(n.Record.Tail)
		if err != nil {
			return 0, err
		}
		return b.st.Fresh(types.Structure{Flat: types.Record1{Fields: fields, Ext: tail}}, b.rank), nil

	case n.Alias != nil:
		args := make([]types.AliasArg, len(n.Alias.Args))
		for i, a := range n.Alias.Args {
			v, err := b.build(a.Var)
			if err != nil {
				return 0, err
			}
			args[i] = types.AliasArg{Name: a.Name, Var: v}
		}
		real, err := b.build(n.Alias.Real)
		if err != nil {
			return 0, err
		}
		return b.st.Fresh(types.Alias{Name: n.Alias.Name, Args: args, RealVar: real}, b.rank), nil

	default:
		return 0, fmt.Errorf("node has no recognized shape")
	}
}
