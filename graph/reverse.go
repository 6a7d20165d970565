// ABOUTME: Builds a reverse-adjacency index used by the dominator engine's
// ABOUTME: semidominator step, so predecessor lookup is O(1) amortized, not a full scan

package graph

// ReverseEdges maps each node to the nodes that point to it, including the
// synthetic root's edges to every GC-root address.
type ReverseEdges map[ObjID][]ObjID

// BuildReverseEdges walks every object once, plus the root set once, to
// build the predecessor index the Lengauer-Tarjan semidominator step needs.
// Building this once up front turns what would otherwise be an O(V) scan of
// every object's Ptrs on every Dominators step into a single O(E) pass.
func BuildReverseEdges(g Graph) ReverseEdges {
	reverse := make(ReverseEdges)

	g.ForEachObject(func(obj *Object) {
		for _, targetID := range obj.Ptrs {
			reverse[targetID] = append(reverse[targetID], obj.ID)
		}
	})
	for _, rootID := range g.GetRoots().IDs {
		reverse[rootID] = append(reverse[rootID], SyntheticRoot)
	}

	return reverse
}
