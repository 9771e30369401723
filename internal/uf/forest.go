// Package uf implements a destructive, generation-less union-find forest.
//
// It is the only principled representation for a type-variable equivalence
// graph: variables are stable integer handles into an arena, path compression
// keeps find() cheap, and union() is total (no failure mode of its own — a
// caller asking to merge two variables always succeeds at the union-find
// level, even if the types they carry are incompatible; that judgment lives
// one layer up).
//
// A Forest is not safe for concurrent use. Callers must serialize access
// externally if a graph is ever shared across goroutines.
package uf

// Variable is an opaque handle into a Forest. Two variables are equivalent
// iff Find returns the same representative for both.
type Variable int

// Forest is a disjoint-set forest over descriptors of type D. D carries
// whatever payload the caller wants to attach to each equivalence class
// (see internal/types.Descriptor for this engine's payload).
type Forest[D any] struct {
	parent []Variable
	desc   []D
}

// NewForest returns an empty forest.
func NewForest[D any]() *Forest[D] {
	return &Forest[D]{}
}

// Fresh allocates a new singleton class holding d and returns its handle.
func (f *Forest[D]) Fresh(d D) Variable {
	v := Variable(len(f.parent))
	f.parent = append(f.parent, v)
	f.desc = append(f.desc, d)
	return v
}

// Find returns v's representative, compressing the path as it walks.
func (f *Forest[D]) Find(v Variable) Variable {
	root := v
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[v] != root {
		next := f.parent[v]
		f.parent[v] = root
		v = next
	}
	return root
}

// Equivalent reports whether a and b share a representative.
func (f *Forest[D]) Equivalent(a, b Variable) bool {
	return f.Find(a) == f.Find(b)
}

// Descriptor reads the payload currently installed at v's representative.
func (f *Forest[D]) Descriptor(v Variable) D {
	return f.desc[f.Find(v)]
}

// Union merges the classes of a and b and installs newDescriptor at the
// surviving root. The surviving root need not be either input — callers must
// not assume a or b remains a root; both handles keep observing the merged
// payload via Find/Descriptor.
func (f *Forest[D]) Union(a, b Variable, newDescriptor D) Variable {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		f.desc[ra] = newDescriptor
		return ra
	}
	f.parent[rb] = ra
	f.desc[ra] = newDescriptor
	return ra
}

// Len reports how many variables have been allocated.
func (f *Forest[D]) Len() int {
	return len(f.parent)
}
