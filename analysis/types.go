// ABOUTME: Report types the Aggregator and Subtree Selector produce
// ABOUTME: Plain data, shaped for direct consumption by the Reporter package

package analysis

import "github.com/heapdom/heapdom/graph"

// TypeTotal is one row of a by-type report: a type tag's aggregate bytes
// and object count.
type TypeTotal struct {
	Type  graph.TypeTag
	Bytes uint64
	Count uint64
}

// RetainerEntry is one row of the Retainers report: a single node's
// dominator-subtree statistics, with its display label precomputed.
type RetainerEntry struct {
	ID    graph.ObjID
	Label string
	Stats graph.RetentionStats
}

// Report bundles every view the Aggregator produces for one analysis root
// (the whole graph, or a re-rooted subtree).
type Report struct {
	InUseByType       []TypeTotal
	RetainedByType    []TypeTotal
	UnreachableByType []TypeTotal
	Retainers         []RetainerEntry

	// LeakedOut is populated only for a re-rooted analysis (§4.5): nodes
	// reachable in the reference graph from the re-root that are not in
	// its dominator subtree. Nil for a whole-graph analysis.
	LeakedOut []graph.ObjID
}
