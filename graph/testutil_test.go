// ABOUTME: Shared test helpers for constructing small graphs across the package's test files
package graph

// testObj is a minimal description used by buildGraph to assemble a Builder
// call without repeating the AddObject argument list at every call site.
type testObj struct {
	ID    ObjID
	Type  TypeTag
	Bytes uint64
	Ptrs  []ObjID
}

// buildGraph wires roots and objs through a Builder and returns the
// finalized Graph, the way a real parser would.
func buildGraph(roots []ObjID, objs ...testObj) Graph {
	b := NewBuilder(nil, nil)
	for _, o := range objs {
		tag := o.Type
		if tag == "" {
			tag = TagObject
		}
		b.AddObject(o.ID, tag, o.Bytes, 0, "", o.Ptrs)
	}
	b.AddRoot("test", roots)
	return b.Finalize()
}
