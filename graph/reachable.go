// ABOUTME: Forward BFS reachability over the reference graph, used by the Subtree
// ABOUTME: Selector to compute the leaked-out set for a re-rooted analysis

package graph

// ForwardReachable returns the set of nodes reachable from `from` by
// following reference-graph edges forward (object.Ptrs), from is included.
// This is the reference-graph reachability the leaked-out set is defined
// against — not dominator-tree membership.
func ForwardReachable(g Graph, from ObjID) map[ObjID]bool {
	visited := map[ObjID]bool{from: true}
	queue := []ObjID{from}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		var ptrs []ObjID
		if id == SyntheticRoot {
			ptrs = g.GetRoots().IDs
		} else if obj := g.GetObject(id); obj != nil {
			ptrs = obj.Ptrs
		}

		for _, next := range ptrs {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return visited
}
