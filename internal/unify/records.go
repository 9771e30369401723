package unify

import (
	"sort"

	"github.com/fluxtype/unify/internal/errs"
	"github.com/fluxtype/unify/internal/types"
)

// gatherFields walks v's representative through its Record1/Ext chain,
// merging field maps along the way, until the tail resolves to either
// EmptyRecord1 (closed = true) or anything else (closed = false, an open
// "Extension" tail). A field already seen earlier in the chain wins over one
// seen later, matching the order fields would be looked up in.
func (u *Unifier) gatherFields(v types.Variable) (fields map[string]types.Variable, tail types.Variable, closed bool) {
	g := u.state.Graph
	fields = map[string]types.Variable{}
	cur := g.Find(v)
	seen := map[types.Variable]bool{}
	for {
		if seen[cur] {
			return fields, cur, false
		}
		seen[cur] = true
		s, ok := g.ContentOf(cur).(types.Structure)
		if !ok {
			return fields, cur, false
		}
		switch flat := s.Flat.(type) {
		case types.EmptyRecord1:
			return fields, cur, true
		case types.Record1:
			for k, fv := range flat.Fields {
				if _, exists := fields[k]; !exists {
					fields[k] = fv
				}
			}
			cur = g.Find(flat.Ext)
		default:
			return fields, cur, false
		}
	}
}

type fieldPair struct{ left, right types.Variable }

func splitFields(l, r map[string]types.Variable) (shared map[string]fieldPair, onlyL, onlyR map[string]types.Variable) {
	shared = map[string]fieldPair{}
	onlyL = map[string]types.Variable{}
	onlyR = map[string]types.Variable{}
	for k, v := range l {
		if rv, ok := r[k]; ok {
			shared[k] = fieldPair{left: v, right: rv}
		} else {
			onlyL[k] = v
		}
	}
	for k, v := range r {
		if _, ok := l[k]; !ok {
			onlyR[k] = v
		}
	}
	return
}

func sortedStringKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// unifySharedFields unifies every shared field independently, collecting
// per-field failures instead of short-circuiting. Fields are visited in
// name order for reproducible diagnostics. When any field fails, a single
// BadFields reason is built naming every failure; it is the caller's job to
// route that through mismatch (for the occurs-check and spine logic every
// other failure path gets).
func (u *Unifier) unifySharedFields(o errs.Orientation, shared map[string]fieldPair) (merged map[string]types.Variable, reason errs.Reason, failed bool) {
	merged = make(map[string]types.Variable, len(shared))
	var failures []errs.FieldReason
	for _, k := range sortedStringKeys(shared) {
		pair := shared[k]
		if p := u.subUnify(o, pair.left, pair.right); p != nil {
			var r errs.Reason
			if p.Kind == errs.KindSpecial {
				r = p.Reason
			}
			failures = append(failures, errs.FieldReason{Field: k, Reason: r})
		}
		merged[k] = pair.left
	}
	if len(failures) == 0 {
		return merged, nil, false
	}
	for i, j := 0, len(failures)-1; i < j; i, j = i+1, j-1 {
		failures[i], failures[j] = failures[j], failures[i]
	}
	return merged, errs.BadFields{Fields: failures}, true
}

func messyFieldsReason(shared map[string]fieldPair, onlyL, onlyR map[string]types.Variable) errs.Reason {
	return errs.MessyFields{
		Shared:    sortedStringKeys(shared),
		OnlyLeft:  sortedStringKeys(onlyL),
		OnlyRight: sortedStringKeys(onlyR),
	}
}

// unifyRecords runs the extensible-record row algorithm: gather both sides
// into field maps plus a tail, split into shared/unique parts, and dispatch
// on which sides are closed and which have unique fields.
func (u *Unifier) unifyRecords(c ctx) *errs.Problem {
	fieldsL, tailL, closedL := u.gatherFields(c.var1)
	fieldsR, tailR, closedR := u.gatherFields(c.var2)

	shared, onlyL, onlyR := splitFields(fieldsL, fieldsR)
	emptyL, emptyR := len(onlyL) == 0, len(onlyR) == 0

	switch {
	case emptyL && emptyR:
		// Identical field sets: the tails alone decide the rest.
		if p := u.subUnify(c.orientation, tailL, tailR); p != nil {
			return p
		}
		merged, reason, failed := u.unifySharedFields(c.orientation, shared)
		if failed {
			return u.mismatch(c, reason)
		}
		u.merge(c, types.Structure{Flat: types.Record1{Fields: merged, Ext: tailL}})
		return nil

	case closedL && !emptyR:
		return u.mismatch(c, messyFieldsReason(shared, onlyL, onlyR))

	case closedR && !emptyL:
		return u.mismatch(c, messyFieldsReason(shared, onlyL, onlyR))

	case !emptyL && emptyR:
		// Left has extra fields the right side, still open, can absorb.
		subRecord := u.fresh(c, types.Structure{Flat: types.Record1{Fields: onlyL, Ext: tailL}})
		if p := u.subUnify(c.orientation, subRecord, tailR); p != nil {
			return p
		}
		merged, reason, failed := u.unifySharedFields(c.orientation, shared)
		if failed {
			return u.mismatch(c, reason)
		}
		u.merge(c, types.Structure{Flat: types.Record1{Fields: merged, Ext: subRecord}})
		return nil

	case emptyL && !emptyR:
		// Symmetric: right has extra fields the left side can absorb.
		subRecord := u.fresh(c, types.Structure{Flat: types.Record1{Fields: onlyR, Ext: tailR}})
		if p := u.subUnify(c.orientation, tailL, subRecord); p != nil {
			return p
		}
		merged, reason, failed := u.unifySharedFields(c.orientation, shared)
		if failed {
			return u.mismatch(c, reason)
		}
		u.merge(c, types.Structure{Flat: types.Record1{Fields: merged, Ext: subRecord}})
		return nil

	default:
		// Both sides have unique fields and open tails: synthesize a shared
		// fresh tail that absorbs the other side's exclusive fields.
		subExt := u.fresh(c, types.FlexVar{})
		expRecord := u.fresh(c, types.Structure{Flat: types.Record1{Fields: onlyR, Ext: subExt}})
		actRecord := u.fresh(c, types.Structure{Flat: types.Record1{Fields: onlyL, Ext: subExt}})
		if p := u.subUnify(c.orientation, tailL, expRecord); p != nil {
			return p
		}
		if p := u.subUnify(c.orientation, actRecord, tailR); p != nil {
			return p
		}
		merged, reason, failed := u.unifySharedFields(c.orientation, shared)
		if failed {
			return u.mismatch(c, reason)
		}
		for k, v := range onlyL {
			merged[k] = v
		}
		for k, v := range onlyR {
			merged[k] = v
		}
		u.merge(c, types.Structure{Flat: types.Record1{Fields: merged, Ext: subExt}})
		return nil
	}
}
