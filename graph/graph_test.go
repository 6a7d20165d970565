// ABOUTME: Tests for the graph Builder and the immutable MemGraph it produces
package graph

import "testing"

func TestBuilderStubsDanglingReferences(t *testing.T) {
	var unknown int
	b := NewBuilder(nil, func() { unknown++ })
	b.AddObject(1, TagObject, 10, 0, "", []ObjID{2})
	b.AddRoot("vm", []ObjID{1})
	g := b.Finalize()

	if unknown != 1 {
		t.Errorf("expected 1 unknown-reference anomaly, got %d", unknown)
	}
	stub := g.GetObject(2)
	if stub == nil {
		t.Fatal("expected a stub node for the dangling reference")
	}
	if !stub.Stub || stub.Type != TagOther || stub.Bytes != 0 {
		t.Errorf("expected dangling stub with TagOther/0 bytes, got %+v", stub)
	}
}

func TestBuilderDuplicateObjectLastWriteWins(t *testing.T) {
	var dupes int
	b := NewBuilder(func() { dupes++ }, nil)
	b.AddObject(1, TagString, 10, 0, "first", []ObjID{2})
	b.AddObject(1, TagString, 99, 0, "second", []ObjID{3})
	b.AddRoot("vm", []ObjID{1})
	g := b.Finalize()

	if dupes != 1 {
		t.Errorf("expected 1 duplicate-object anomaly, got %d", dupes)
	}
	obj := g.GetObject(1)
	if obj.Bytes != 99 || obj.Attr != "second" {
		t.Errorf("expected last-write-wins scalars, got %+v", obj)
	}
	if len(obj.Ptrs) != 1 || obj.Ptrs[0] != 3 {
		t.Errorf("expected reference list replaced (not merged), got %v", obj.Ptrs)
	}
}

func TestBuilderSelfLoopDropped(t *testing.T) {
	b := NewBuilder(nil, nil)
	b.AddObject(1, TagObject, 1, 0, "", []ObjID{1, 2})
	b.AddRoot("vm", []ObjID{1})
	g := b.Finalize()

	obj := g.GetObject(1)
	for _, p := range obj.Ptrs {
		if p == 1 {
			t.Errorf("self-loop should have been dropped, got Ptrs=%v", obj.Ptrs)
		}
	}
}

func TestBuilderDeduplicatesMultiEdges(t *testing.T) {
	b := NewBuilder(nil, nil)
	b.AddObject(1, TagObject, 1, 0, "", []ObjID{2, 2, 2})
	b.AddRoot("vm", []ObjID{1})
	g := b.Finalize()

	obj := g.GetObject(1)
	if len(obj.Ptrs) != 1 {
		t.Errorf("expected multi-edges collapsed to one, got %v", obj.Ptrs)
	}
}

func TestBuilderClassNameResolution(t *testing.T) {
	b := NewBuilder(nil, nil)
	// the class record can arrive after the instance that references it
	b.AddObject(10, TagObject, 5, 100, "", nil)
	b.AddObject(100, TagClass, 0, 0, "MyClass", nil)
	b.AddRoot("vm", []ObjID{10})
	g := b.Finalize()

	obj := g.GetObject(10)
	if obj.ClassName != "MyClass" {
		t.Errorf("expected resolved class name MyClass, got %q", obj.ClassName)
	}
}

func TestBuilderUnresolvedClassLeavesNameEmpty(t *testing.T) {
	b := NewBuilder(nil, nil)
	b.AddObject(10, TagObject, 5, 999, "", nil) // class 999 never described
	b.AddRoot("vm", []ObjID{10})
	g := b.Finalize()

	obj := g.GetObject(10)
	if obj.ClassName != "" {
		t.Errorf("expected empty class name for unresolved class, got %q", obj.ClassName)
	}
}

func TestSyntheticRootExcludedFromObjects(t *testing.T) {
	g := buildGraph([]ObjID{1}, testObj{ID: 1, Bytes: 10})
	if g.GetObject(SyntheticRoot) != nil {
		t.Error("synthetic root must not be a reportable object")
	}
}

func TestRootsDeduplicated(t *testing.T) {
	b := NewBuilder(nil, nil)
	b.AddObject(1, TagObject, 1, 0, "", nil)
	b.AddRoot("vm", []ObjID{1, 1})
	b.AddRoot("finalizers", []ObjID{1})
	g := b.Finalize()

	roots := g.GetRoots()
	if len(roots.IDs) != 1 {
		t.Errorf("expected deduplicated roots, got %v", roots.IDs)
	}
	if roots.Categories[1] != "vm" {
		t.Errorf("expected first-seen category retained, got %q", roots.Categories[1])
	}
}

func TestForEachObjectVisitsAll(t *testing.T) {
	g := buildGraph([]ObjID{1}, testObj{ID: 1, Bytes: 1, Ptrs: []ObjID{2}}, testObj{ID: 2, Bytes: 2})
	count := 0
	g.ForEachObject(func(*Object) { count++ })
	if count != 2 {
		t.Errorf("expected 2 objects visited, got %d", count)
	}
	if g.NumObjects() != 2 {
		t.Errorf("expected NumObjects() == 2, got %d", g.NumObjects())
	}
}
