// ABOUTME: The record model of a heap dump: one ObjectRecord or RootRecord per heap entry
// ABOUTME: rubydump.Parser does not build these values; it feeds each line straight to the Graph Builder

package heapdump

import "github.com/heapdom/heapdom/graph"

// Record is either an *ObjectRecord or a *RootRecord.
type Record interface {
	isRecord()
}

// ObjectRecord describes one heap object. Bytes defaults to 0 when absent
// from the dump. ClassAddr is 0 when the record carries no class field.
// Attr holds whatever short label-forming attribute the record carried
// (a truncated string value, an array length, a hash size, or a resolved
// class/module name) — see graph.Label.
type ObjectRecord struct {
	Address    graph.ObjID
	Type       graph.TypeTag
	Bytes      uint64
	ClassAddr  graph.ObjID
	Attr       string
	References []graph.ObjID
}

func (*ObjectRecord) isRecord() {}

// RootRecord describes one root-set entry. Category is a presentation
// label such as "machine_context", "vm", or "finalizers"; it plays no role
// in graph construction beyond an optional label prefix.
type RootRecord struct {
	Category   string
	References []graph.ObjID
}

func (*RootRecord) isRecord() {}
