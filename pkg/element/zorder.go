package element

import "sort"

// renderEntry is one element in the flattened render list, carrying the
// inputs of the stacking comparator.
type renderEntry struct {
	el       Element
	depth    int
	z        int
	hasZ     bool
	creation int64
}

// collectTree flattens every descendant of root (root itself excluded) with
// its nesting depth and effective z-index. The effective z-index is the
// nearest self-or-ancestor explicit value, so an element inherits the
// stacking bucket of the subtree it lives in.
func collectTree(root Element) []renderEntry {
	var entries []renderEntry
	g, ok := root.(Grouped)
	if !ok {
		return entries
	}
	for _, child := range g.Children() {
		entries = collectInto(entries, child, 1, 0, false)
	}
	return entries
}

func collectInto(entries []renderEntry, el Element, depth, inheritedZ int, hasInherited bool) []renderEntry {
	b := el.core()
	z, hasZ := inheritedZ, hasInherited
	if own, ok := b.ZIndex(); ok {
		z, hasZ = own, true
	}
	entries = append(entries, renderEntry{
		el:       el,
		depth:    depth,
		z:        z,
		hasZ:     hasZ,
		creation: b.CreationIndex(),
	})
	if g, ok := el.(Grouped); ok {
		for _, child := range g.Children() {
			entries = collectInto(entries, child, depth+1, z, hasZ)
		}
	}
	return entries
}

// sortByStacking orders entries back-to-front: explicit z-index first (a
// missing value ranks below any explicit one), then nesting depth (deeper
// renders later), then creation index.
func sortByStacking(entries []renderEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.hasZ != b.hasZ {
			return !a.hasZ
		}
		if a.hasZ && a.z != b.z {
			return a.z < b.z
		}
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.creation < b.creation
	})
}
