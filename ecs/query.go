package ecs

import (
	"sort"

	"github.com/milk9111/flappyshooter/ecs/component"
)

// IntersectEntities returns entity IDs present in both sets, as a fresh slice.
func IntersectEntities(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if len(a.denseEntities) > len(b.denseEntities) {
		a, b = b, a
	}
	out := make([]int, 0, len(a.denseEntities))
	for _, id := range a.denseEntities {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Query returns live entities that hold every given kind, in id order.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return len(sets[i].denseEntities) < len(sets[j].denseEntities) })

	ids := snapshot(sets[0])
	sort.Ints(ids)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		matched := true
		for _, s := range sets[1:] {
			if !s.Has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id live entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	best := 0
	for _, id := range w.store(kind.ID(), false).Entities() {
		if best == 0 || id < best {
			best = id
		}
	}
	if best == 0 {
		return 0, false
	}
	return w.entities.handle(best)
}
