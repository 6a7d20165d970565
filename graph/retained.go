// ABOUTME: Computes subtree-bytes and subtree-count retention stats over a dominator tree
// ABOUTME: Optionally fans independent root-child subtrees out over an errgroup
package graph

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RetentionStats is a node's retained-set statistics: the inclusive sum of
// self-bytes (subtree-bytes) and inclusive node count (subtree-count) over
// its dominator subtree.
type RetentionStats struct {
	Bytes uint64
	Count uint64
}

// ComputeRetention walks the dominator tree bottom-up (post-order) to
// compute RetentionStats for every node present in tree, including the
// synthetic root. self is consulted for each node's own byte size; the
// synthetic root's self-size is always 0.
//
// When parallel is true and the synthetic root has more than one child,
// each child's subtree is walked on its own goroutine via an errgroup — the
// children of the synthetic root are disjoint by construction (each
// reachable node has exactly one immediate dominator), so no node is ever
// written by more than one goroutine and no locking is required.
func ComputeRetention(tree map[ObjID][]ObjID, self func(ObjID) uint64, parallel bool) map[ObjID]RetentionStats {
	result := make(map[ObjID]RetentionStats, len(tree))
	rootChildren := tree[SyntheticRoot]

	if !parallel || len(rootChildren) < 2 {
		walkRetention(tree, self, SyntheticRoot, result)
		return result
	}

	// Each root child's dominator subtree is disjoint from every other's
	// (a reachable node has exactly one immediate dominator), so each
	// goroutine below writes a disjoint key range into a private map with
	// no shared mutable state; they are merged into result afterward.
	partials := make([]map[ObjID]RetentionStats, len(rootChildren))
	g, _ := errgroup.WithContext(context.Background())
	for i, child := range rootChildren {
		i, child := i, child
		g.Go(func() error {
			partial := make(map[ObjID]RetentionStats)
			walkRetention(tree, self, child, partial)
			partials[i] = partial
			return nil
		})
	}
	_ = g.Wait() // walkRetention never errors; Wait only synchronizes

	rootStats := RetentionStats{Bytes: self(SyntheticRoot), Count: 1}
	for i, child := range rootChildren {
		for id, stats := range partials[i] {
			result[id] = stats
		}
		cs := partials[i][child]
		rootStats.Bytes += cs.Bytes
		rootStats.Count += cs.Count
	}
	result[SyntheticRoot] = rootStats

	return result
}

// walkRetention post-order walks tree from node, writing every visited
// node's RetentionStats into out. Iterative: recursion would blow the stack
// on gigabyte-class, mostly-linear-chain heap graphs, the same class of
// input Dominators' DFS is hardened against.
func walkRetention(tree map[ObjID][]ObjID, self func(ObjID) uint64, node ObjID, out map[ObjID]RetentionStats) {
	type frame struct {
		node     ObjID
		expanded bool
	}
	stack := []frame{{node, false}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.expanded {
			stack = append(stack, frame{f.node, true})
			children := tree[f.node]
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{children[i], false})
			}
			continue
		}

		stats := RetentionStats{Bytes: self(f.node), Count: 1}
		for _, child := range tree[f.node] {
			cs := out[child]
			stats.Bytes += cs.Bytes
			stats.Count += cs.Count
		}
		out[f.node] = stats
	}
}
