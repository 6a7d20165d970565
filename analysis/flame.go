// ABOUTME: Builds folded-stack flame data from the dominator tree, typed by frame
// ABOUTME: One stack per dominator-tree leaf, weighted by that leaf's self-bytes

package analysis

import "github.com/heapdom/heapdom/graph"

// FlameStack is one line of folded-stack data: frames ordered root-first,
// weighted by the leaf's self-bytes.
type FlameStack struct {
	Frames []string
	Weight uint64
}

// BuildFlameStacks emits one FlameStack per reachable leaf of the dominator
// tree (a node with no dominator-tree children): its frames are the type
// tags along its dominator chain, from the synthetic root down to the leaf
// itself, and its weight is its own self-bytes.
func BuildFlameStacks(g graph.Graph, idom map[graph.ObjID]graph.ObjID, tree map[graph.ObjID][]graph.ObjID, reachable map[graph.ObjID]bool) []FlameStack {
	var stacks []FlameStack

	for id := range reachable {
		if id == graph.SyntheticRoot || len(tree[id]) != 0 {
			continue
		}

		path := graph.DominatorPath(idom, id) // leaf-first, SyntheticRoot last
		frames := make([]string, len(path))
		for i, n := range path {
			frames[len(path)-1-i] = frameLabel(g, n)
		}

		var weight uint64
		if obj := g.GetObject(id); obj != nil {
			weight = obj.Bytes
		}

		stacks = append(stacks, FlameStack{Frames: frames, Weight: weight})
	}

	return stacks
}

func frameLabel(g graph.Graph, id graph.ObjID) string {
	if id == graph.SyntheticRoot {
		return "ROOT"
	}
	if obj := g.GetObject(id); obj != nil {
		return string(obj.Type)
	}
	return string(graph.TagOther)
}
