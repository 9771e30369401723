// Package types is the TypeGraph: the descriptor payload shared by every
// other component — the Content sum type, FlatType, the super-class lattice
// values, and the generalization metadata (rank/mark/copy) that rides along
// with every descriptor.
package types

import "github.com/fluxtype/unify/internal/uf"

// Variable is a handle into the shared type graph.
type Variable = uf.Variable

// NoRank is the sentinel rank installed on Error-healed variables.
const NoRank = -1

// NoMark is the sentinel mark installed by every union, per the invariant
// that unification resets the mark of any representative it touches so that
// later passes (generalization, etc.) know the mark is stale.
const NoMark = -1
