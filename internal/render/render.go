// Package render is the pretty-printer collaborator the unifier calls back
// into only on failure paths, to turn a graph variable into a source-like
// type string for an error message.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fluxtype/unify/internal/names"
	"github.com/fluxtype/unify/internal/types"
)

// SrcType is a rendered, human-readable type. It satisfies errs.RenderedType
// structurally (both are just String() string) without internal/errs having
// to import this package.
type SrcType string

func (s SrcType) String() string { return string(s) }

// ToSrcType walks v's structural expansion in g and renders it the way a
// user would write the type back, unwrapping aliases to their names
// (keeping the alias name, not its expansion) and rendering List<Char> as
// String the way the surface syntax does.
func ToSrcType(g *types.Graph, v types.Variable) SrcType {
	return SrcType(render(g, v, map[types.Variable]bool{}))
}

func render(g *types.Graph, v types.Variable, visiting map[types.Variable]bool) string {
	r := g.Find(v)
	if visiting[r] {
		return "..."
	}
	visiting[r] = true
	defer delete(visiting, r)

	switch content := g.ContentOf(r).(type) {
	case types.FlexVar:
		if content.Name != nil {
			return *content.Name
		}
		return fmt.Sprintf("t%d", int(r))
	case types.FlexSuper:
		if content.Name != nil {
			return *content.Name
		}
		return fmt.Sprintf("t%d", int(r))
	case types.RigidVar:
		return content.Name
	case types.RigidSuper:
		return content.Name
	case types.Alias:
		if len(content.Args) == 0 {
			return content.Name
		}
		parts := make([]string, len(content.Args))
		for i, a := range content.Args {
			parts[i] = render(g, a.Var, visiting)
		}
		return fmt.Sprintf("(%s %s)", content.Name, strings.Join(parts, " "))
	case types.Structure:
		return renderFlat(g, content.Flat, visiting)
	case types.Error:
		return "?"
	default:
		return "?"
	}
}

func renderFlat(g *types.Graph, flat types.FlatType, visiting map[types.Variable]bool) string {
	switch f := flat.(type) {
	case types.App1:
		if f.Ctor == names.List && len(f.Args) == 1 {
			if isCharArg(g, f.Args[0]) {
				return "String"
			}
		}
		if names.IsTuple(f.Ctor) {
			parts := make([]string, len(f.Args))
			for i, a := range f.Args {
				parts[i] = render(g, a, visiting)
			}
			return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
		}
		if len(f.Args) == 0 {
			return f.Ctor
		}
		parts := make([]string, len(f.Args))
		for i, a := range f.Args {
			parts[i] = render(g, a, visiting)
		}
		return fmt.Sprintf("(%s %s)", f.Ctor, strings.Join(parts, " "))
	case types.Fun1:
		return fmt.Sprintf("%s -> %s", render(g, f.Arg, visiting), render(g, f.Result, visiting))
	case types.EmptyRecord1:
		return "{}"
	case types.Record1:
		keys := make([]string, 0, len(f.Fields))
		for k := range f.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]string, len(keys))
		for i, k := range keys {
			fields[i] = fmt.Sprintf("%s: %s", k, render(g, f.Fields[k], visiting))
		}
		tail := render(g, f.Ext, visiting)
		if tail == "{}" {
			return fmt.Sprintf("{ %s }", strings.Join(fields, ", "))
		}
		return fmt.Sprintf("{ %s | %s }", strings.Join(fields, ", "), tail)
	default:
		return "?"
	}
}

func isCharArg(g *types.Graph, v types.Variable) bool {
	s, ok := g.ContentOf(g.Find(v)).(types.Structure)
	if !ok {
		return false
	}
	app, ok := s.Flat.(types.App1)
	return ok && app.Ctor == names.Char && len(app.Args) == 0
}
