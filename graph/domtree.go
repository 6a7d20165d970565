// ABOUTME: Utility functions for working with dominator trees
// ABOUTME: Tree construction from idom, depth/path/ancestry queries, and subtree membership
package graph

// DominatorTree inverts an immediate-dominator map into a children index:
// for each node, the list of nodes it immediately dominates.
func DominatorTree(idom map[ObjID]ObjID) map[ObjID][]ObjID {
	tree := make(map[ObjID][]ObjID)
	tree[SyntheticRoot] = []ObjID{}

	for node, dom := range idom {
		tree[dom] = append(tree[dom], node)
	}
	return tree
}

// DominatorDepth computes the depth of each node in the dominator tree
// rooted at root (the synthetic root has depth 0).
func DominatorDepth(tree map[ObjID][]ObjID, root ObjID) map[ObjID]int {
	depth := make(map[ObjID]int)

	type frame struct {
		node ObjID
		d    int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		depth[f.node] = f.d
		for _, child := range tree[f.node] {
			stack = append(stack, frame{child, f.d + 1})
		}
	}
	return depth
}

// DominatorPath returns the path from node up to the synthetic root in the
// dominator tree, node first, SyntheticRoot last.
func DominatorPath(idom map[ObjID]ObjID, node ObjID) []ObjID {
	path := []ObjID{node}
	current := node
	for current != SyntheticRoot {
		dom, exists := idom[current]
		if !exists {
			break
		}
		path = append(path, dom)
		current = dom
	}
	return path
}

// IsDominated reports whether node is dominated by dominator (every node
// dominates itself).
func IsDominated(idom map[ObjID]ObjID, node, dominator ObjID) bool {
	if node == dominator {
		return true
	}
	current := node
	for {
		dom, exists := idom[current]
		if !exists {
			return false
		}
		if dom == dominator {
			return true
		}
		if dom == SyntheticRoot {
			return dominator == SyntheticRoot
		}
		current = dom
	}
}

// TopLevelAncestor walks node's dominator chain up to the node positioned at
// depth 1 — the synthetic root's immediate child that node descends from —
// and returns its ID. If node itself is at depth 1 (or is the synthetic
// root), it is returned unchanged. This implements the "retained by type"
// attribution rule: every node's self-bytes are credited to the type of its
// dominator-subtree's top-level retainer.
func TopLevelAncestor(idom map[ObjID]ObjID, node ObjID) ObjID {
	current := node
	for {
		dom, exists := idom[current]
		if !exists || dom == SyntheticRoot {
			return current
		}
		current = dom
	}
}

// Subtree returns the set of nodes in node's dominator subtree (node
// itself plus every descendant), using tree as produced by DominatorTree.
func Subtree(tree map[ObjID][]ObjID, node ObjID) map[ObjID]bool {
	members := map[ObjID]bool{node: true}
	stack := []ObjID{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range tree[n] {
			if !members[child] {
				members[child] = true
				stack = append(stack, child)
			}
		}
	}
	return members
}
