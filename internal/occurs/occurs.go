// Package occurs implements the occurs (infinite-type) check: whether a
// variable's structural expansion reaches itself through any Structure or
// Alias edge.
package occurs

import (
	"sort"

	"github.com/fluxtype/unify/internal/types"
)

// Occurs returns true iff the structural expansion of start reaches start's
// own representative through any Structure or Alias edge. It is cycle-safe:
// already-visited representatives are memoized so a pre-existing cyclic
// graph elsewhere in the type terminates instead of looping forever.
func Occurs(g *types.Graph, start types.Variable) bool {
	target := g.Find(start)
	visited := make(map[types.Variable]bool)

	var walk func(v types.Variable, isStart bool) bool
	walk = func(v types.Variable, isStart bool) bool {
		v = g.Find(v)
		if !isStart && v == target {
			return true
		}
		if visited[v] {
			return false
		}
		visited[v] = true

		switch c := g.ContentOf(v).(type) {
		case types.Structure:
			return walkFlat(g, c.Flat, walk)
		case types.Alias:
			for _, arg := range c.Args {
				if walk(arg.Var, false) {
					return true
				}
			}
			return walk(c.RealVar, false)
		default:
			return false
		}
	}

	return walk(target, true)
}

func walkFlat(g *types.Graph, flat types.FlatType, walk func(types.Variable, bool) bool) bool {
	switch f := flat.(type) {
	case types.App1:
		for _, a := range f.Args {
			if walk(a, false) {
				return true
			}
		}
		return false
	case types.Fun1:
		if walk(f.Arg, false) {
			return true
		}
		return walk(f.Result, false)
	case types.EmptyRecord1:
		return false
	case types.Record1:
		keys := make([]string, 0, len(f.Fields))
		for k := range f.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if walk(f.Fields[k], false) {
				return true
			}
		}
		return walk(f.Ext, false)
	default:
		return false
	}
}
