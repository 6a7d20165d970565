// ABOUTME: The Aggregator: type-grouped byte/count totals and the ranked retainers list
// ABOUTME: Consumes a dominator tree and precomputed RetentionStats, never recomputes them

package analysis

import (
	"sort"

	"github.com/heapdom/heapdom/graph"
)

// Aggregate builds every report the Aggregator produces for one analysis
// scope. members is the node set InUseByType, RetainedByType, and Retainers
// are restricted to — the full reachable set for a whole-graph analysis, or
// a re-root's dominator subtree (graph.Subtree) for a re-rooted one.
// UnreachableByType always reflects every object in g that reachable does
// not contain, independent of members, since unreachability is a
// whole-graph property a re-root cannot narrow.
func Aggregate(g graph.Graph, idom map[graph.ObjID]graph.ObjID, reachable, members map[graph.ObjID]bool, retention map[graph.ObjID]graph.RetentionStats) *Report {
	inUse := make(map[graph.TypeTag]*TypeTotal)
	retainedByType := make(map[graph.TypeTag]*TypeTotal)
	unreachable := make(map[graph.TypeTag]*TypeTotal)
	var retainers []RetainerEntry

	g.ForEachObject(func(obj *graph.Object) {
		if !reachable[obj.ID] {
			addTotal(unreachable, obj.Type, obj.Bytes)
			return
		}
		if !members[obj.ID] {
			return
		}

		addTotal(inUse, obj.Type, obj.Bytes)

		top := graph.TopLevelAncestor(idom, obj.ID)
		topType := graph.TagOther
		if topObj := g.GetObject(top); topObj != nil {
			topType = topObj.Type
		} else if top == graph.SyntheticRoot {
			topType = graph.TagRoot
		}
		addTotal(retainedByType, topType, obj.Bytes)

		if stats, ok := retention[obj.ID]; ok {
			retainers = append(retainers, RetainerEntry{
				ID:    obj.ID,
				Label: graph.Label(obj),
				Stats: stats,
			})
		}
	})

	sort.Slice(retainers, func(i, j int) bool {
		if retainers[i].Stats.Bytes != retainers[j].Stats.Bytes {
			return retainers[i].Stats.Bytes > retainers[j].Stats.Bytes
		}
		return retainers[i].ID < retainers[j].ID
	})

	return &Report{
		InUseByType:       sortedTotals(inUse),
		RetainedByType:    sortedTotals(retainedByType),
		UnreachableByType: sortedTotals(unreachable),
		Retainers:         retainers,
	}
}

func addTotal(m map[graph.TypeTag]*TypeTotal, tag graph.TypeTag, bytes uint64) {
	t, ok := m[tag]
	if !ok {
		t = &TypeTotal{Type: tag}
		m[tag] = t
	}
	t.Bytes += bytes
	t.Count++
}

func sortedTotals(m map[graph.TypeTag]*TypeTotal) []TypeTotal {
	out := make([]TypeTotal, 0, len(m))
	for _, t := range m {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bytes != out[j].Bytes {
			return out[i].Bytes > out[j].Bytes
		}
		return out[i].Type < out[j].Type
	})
	return out
}
