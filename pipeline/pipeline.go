// ABOUTME: Wires Parser, Graph Builder, Dominator Engine, Aggregator, and Subtree Selector
// ABOUTME: into one call, shared by the CLI entrypoint and the MCP server

// Package pipeline runs the full analysis once: parse the dump, build the
// graph, compute dominators and retention, then aggregate — optionally
// re-rooted at a chosen node — into the reports the Reporter renders. Both
// cmd/heapdom and mcpserver drive the same Run so the two surfaces can
// never drift in behavior.
package pipeline

import (
	"fmt"
	"io"

	"github.com/heapdom/heapdom/analysis"
	"github.com/heapdom/heapdom/errs"
	"github.com/heapdom/heapdom/graph"
	"github.com/heapdom/heapdom/heapdump"
	"github.com/heapdom/heapdom/heapdump/rubydump"
)

// Options configures one Run.
type Options struct {
	// Reroot, if non-zero, restricts the Aggregator to this node's
	// dominator subtree and populates Report.LeakedOut.
	Reroot graph.ObjID
	// Parallel enables the errgroup fan-out in retention computation.
	Parallel bool
}

// Result bundles everything a Reporter needs: the graph and dominator
// structures (for WriteDot, which needs to walk retainer ancestry), the
// aggregated Report, and the anomaly counters accumulated while parsing.
type Result struct {
	Graph     graph.Graph
	Idom      map[graph.ObjID]graph.ObjID
	Tree      map[graph.ObjID][]graph.ObjID
	Reachable map[graph.ObjID]bool
	Retention map[graph.ObjID]graph.RetentionStats
	Report    *analysis.Report
	Counters  errs.Counters
}

// Run executes the full pipeline against r, a dump stream in the rubydump
// line-delimited JSON format.
func Run(r io.Reader, opts Options) (*Result, error) {
	parser := &rubydump.Parser{}
	g, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return runAnalysis(g, parser.Counters, opts)
}

// RunWithParser is Run generalized over any heapdump.Parser, for callers
// that need the JSON fixture parser instead of rubydump's line-delimited
// format.
func RunWithParser(parser heapdump.Parser, r io.Reader, opts Options) (*Result, error) {
	g, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	var counters errs.Counters
	if rp, ok := parser.(*rubydump.Parser); ok {
		counters = rp.Counters
	}
	return runAnalysis(g, counters, opts)
}

func runAnalysis(g graph.Graph, counters errs.Counters, opts Options) (*Result, error) {
	idom, reachable := graph.Dominators(g)
	tree := graph.DominatorTree(idom)

	self := func(id graph.ObjID) uint64 {
		if id == graph.SyntheticRoot {
			return 0
		}
		if obj := g.GetObject(id); obj != nil {
			return obj.Bytes
		}
		return 0
	}
	retention := graph.ComputeRetention(tree, self, opts.Parallel)

	members := reachable
	var leakedOut []graph.ObjID
	if opts.Reroot != graph.SyntheticRoot {
		if !reachable[opts.Reroot] {
			return nil, fmt.Errorf("%w: 0x%x", errs.ErrUnknownReroot, uint64(opts.Reroot))
		}
		members = graph.Subtree(tree, opts.Reroot)
		leakedOut = analysis.LeakedOut(g, tree, opts.Reroot)
	}

	report := analysis.Aggregate(g, idom, reachable, members, retention)
	report.LeakedOut = leakedOut

	return &Result{
		Graph:     g,
		Idom:      idom,
		Tree:      tree,
		Reachable: reachable,
		Retention: retention,
		Report:    report,
		Counters:  counters,
	}, nil
}
