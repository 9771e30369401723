package types

import "github.com/fluxtype/unify/internal/uf"

// Descriptor is the payload installed at each union-find representative:
// the semantic content plus the generalization metadata that rides along
// with it. Rank is merged as min(rank_a, rank_b) on every union; Mark and
// Copy are reset on every union (see Graph.Merge).
type Descriptor struct {
	Content Content
	Rank    int
	Mark    int
	// Copy is an optional scratch slot used by external passes (e.g. a
	// generalization pass copying a type out of the graph). nil means empty.
	Copy *Variable
}

// Graph is the shared union-find forest of Descriptors. It is the TypeGraph
// component: every other package (occurs, unify, render) reads and mutates
// variables exclusively through a *Graph.
type Graph struct {
	forest *uf.Forest[Descriptor]
}

// NewGraph returns an empty type graph.
func NewGraph() *Graph {
	return &Graph{forest: uf.NewForest[Descriptor]()}
}

// Fresh allocates a new variable holding content at the given rank, with a
// clean mark and no copy slot.
func (g *Graph) Fresh(content Content, rank int) Variable {
	return g.forest.Fresh(Descriptor{Content: content, Rank: rank, Mark: NoMark})
}

// Find returns v's representative.
func (g *Graph) Find(v Variable) Variable {
	return g.forest.Find(v)
}

// Equivalent reports whether a and b have the same representative.
func (g *Graph) Equivalent(a, b Variable) bool {
	return g.forest.Equivalent(a, b)
}

// Descriptor reads v's representative's payload.
func (g *Graph) Descriptor(v Variable) Descriptor {
	return g.forest.Descriptor(v)
}

// ContentOf is a convenience accessor for Descriptor(v).Content.
func (g *Graph) ContentOf(v Variable) Content {
	return g.forest.Descriptor(v).Content
}

// Merge installs content at the shared root of a and b, at
// rank = min(rank_a, rank_b), with mark reset to NoMark and the copy slot
// cleared.
func (g *Graph) Merge(a, b Variable, content Content) Variable {
	da, db := g.Descriptor(a), g.Descriptor(b)
	rank := da.Rank
	if db.Rank < rank {
		rank = db.Rank
	}
	return g.forest.Union(a, b, Descriptor{Content: content, Rank: rank, Mark: NoMark})
}

// FreshLike allocates a new variable for content at rank = min(rank_a, rank_b),
// a brand-new variable scoped to the same generalization rank as the pair
// being unified. The variable is not recorded in any solver session registry.
func (g *Graph) FreshLike(a, b Variable, content Content) Variable {
	da, db := g.Descriptor(a), g.Descriptor(b)
	rank := da.Rank
	if db.Rank < rank {
		rank = db.Rank
	}
	return g.Fresh(content, rank)
}

// Heal unions a and b into an Error content at NoRank, the unconditional
// healing step run after any top-level unification failure.
func (g *Graph) Heal(a, b Variable, reason string) {
	g.forest.Union(a, b, Descriptor{Content: Error{Reason: reason}, Rank: NoRank, Mark: NoMark})
}
