// ABOUTME: Subtree Selector: restricts a report to one node's dominator subtree
// ABOUTME: and computes its leaked-out set against the reference graph

package analysis

import "github.com/heapdom/heapdom/graph"

// LeakedOut computes the leaked-out set for a re-root: nodes reachable from
// reroot in the reference graph that are not members of reroot's dominator
// subtree. By construction (§8's invariant) this set is disjoint from the
// subtree and their union is exactly graph.ForwardReachable(g, reroot).
func LeakedOut(g graph.Graph, tree map[graph.ObjID][]graph.ObjID, reroot graph.ObjID) []graph.ObjID {
	members := graph.Subtree(tree, reroot)
	reachable := graph.ForwardReachable(g, reroot)

	out := make([]graph.ObjID, 0, len(reachable))
	for id := range reachable {
		if !members[id] {
			out = append(out, id)
		}
	}
	return out
}
