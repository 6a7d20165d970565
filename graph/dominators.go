// ABOUTME: Implements the Lengauer-Tarjan algorithm for computing dominators in directed graphs
// ABOUTME: Provides near-linear time immediate-dominator computation over the heap reference graph
package graph

// Dominators computes the immediate dominator for each node reachable from
// the synthetic root. It is a convenience wrapper over DominatorsFrom.
func Dominators(g Graph) (idom map[ObjID]ObjID, reachable map[ObjID]bool) {
	return DominatorsFrom(g, SyntheticRoot)
}

// DominatorsFrom computes the immediate dominator for each node reachable
// from root using the Lengauer-Tarjan algorithm. root is conventionally the
// synthetic root, but the algorithm itself is root-agnostic — a re-rooted
// analysis is a first-class capability even though the Subtree Selector
// does not use it (it restricts the single whole-graph dominator tree
// instead; see the analysis package). root has no immediate dominator of
// its own and is absent from the returned idom map. Nodes unreachable from
// root are absent from both idom and reachable.
//
// Unlike a naive port of the textbook algorithm, the semidominator step
// below does not rescan every object's Ptrs to find w's predecessors on
// each of the |V| iterations (O(V·E) total); it looks them up in a
// precomputed reverse-adjacency index (graph.BuildReverseEdges), making the
// whole pass O(E) as gigabyte-class dumps require.
func DominatorsFrom(g Graph, root ObjID) (idom map[ObjID]ObjID, reachable map[ObjID]bool) {
	adjOf := func(v ObjID) []ObjID {
		if v == SyntheticRoot {
			return g.GetRoots().IDs
		}
		if obj := g.GetObject(v); obj != nil {
			return obj.Ptrs
		}
		return nil
	}

	pred := BuildReverseEdges(g)
	predOf := func(v ObjID) []ObjID {
		if v == root && root != SyntheticRoot {
			return nil // a re-rooted analysis root is treated as having no predecessors
		}
		return pred[v]
	}

	var dfsNum int
	vertex := make([]ObjID, 0)
	parent := make(map[ObjID]int)
	dfnum := make(map[ObjID]int)
	semi := make(map[ObjID]int)
	ancestor := make(map[ObjID]int)
	idomOut := make(map[ObjID]ObjID)
	samedom := make(map[ObjID]ObjID)
	best := make(map[ObjID]ObjID)
	bucket := make(map[int][]ObjID)

	// Iterative DFS: recursion would blow the stack on gigabyte-class,
	// mostly-linear-chain heap graphs.
	type frame struct {
		v ObjID
		p int
	}
	stack := []frame{{root, -1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, visited := dfnum[f.v]; visited {
			continue
		}
		dfnum[f.v] = dfsNum
		vertex = append(vertex, f.v)
		parent[f.v] = f.p
		semi[f.v] = dfsNum
		ancestor[f.v] = -1
		best[f.v] = f.v
		samedom[f.v] = f.v
		dfsNum++

		children := adjOf(f.v)
		for i := len(children) - 1; i >= 0; i-- {
			if _, visited := dfnum[children[i]]; !visited {
				stack = append(stack, frame{children[i], dfnum[f.v]})
			}
		}
	}

	var compress func(v ObjID)
	compress = func(v ObjID) {
		anc := ancestor[v]
		if anc == -1 {
			return
		}
		ancID := vertex[anc]
		if ancestor[ancID] != -1 {
			compress(ancID)
			if semi[best[ancID]] < semi[best[v]] {
				best[v] = best[ancID]
			}
			ancestor[v] = ancestor[ancID]
		}
	}

	eval := func(v ObjID) ObjID {
		if ancestor[v] == -1 {
			return v
		}
		compress(v)
		return best[v]
	}

	link := func(v ObjID, w int) {
		ancestor[v] = w
	}

	for i := dfsNum - 1; i > 0; i-- {
		w := vertex[i]

		// Step 2: compute w's semidominator from its predecessors.
		for _, v := range predOf(w) {
			vNum, vReachable := dfnum[v]
			if !vReachable {
				continue
			}
			var u ObjID
			if vNum <= dfnum[w] {
				u = v
			} else {
				u = eval(v)
			}
			if semi[u] < semi[w] {
				semi[w] = semi[u]
			}
		}

		bucket[semi[w]] = append(bucket[semi[w]], w)

		if parent[w] != -1 {
			link(w, parent[w])
		}

		// Step 3: implicitly compute immediate dominators for w's parent's bucket.
		for _, v := range bucket[parent[w]] {
			u := eval(v)
			if semi[u] == semi[v] {
				idomOut[v] = vertex[parent[w]]
			} else {
				samedom[v] = u
			}
		}
		bucket[parent[w]] = nil
	}

	// Step 4: explicitly compute immediate dominators left pending in samedom.
	for i := 1; i < dfsNum; i++ {
		w := vertex[i]
		if samedom[w] != w {
			idomOut[w] = idomOut[samedom[w]]
		}
	}

	reachable = make(map[ObjID]bool, dfsNum)
	for _, v := range vertex {
		reachable[v] = true
	}
	delete(idomOut, root)

	return idomOut, reachable
}
