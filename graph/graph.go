// ABOUTME: Graph interface, immutable in-memory implementation, and the Builder
// ABOUTME: that streams records into it with stub creation and class-name resolution

package graph

// Graph is the read-only view every downstream phase operates on. It is
// produced once by Builder.Finalize and never mutated again, so unlike the
// teacher's MemGraph it carries no lock: concurrent readers are safe by
// construction.
type Graph interface {
	// GetObject retrieves an object by ID, or nil if absent.
	GetObject(id ObjID) *Object

	// NumObjects returns the total number of objects, excluding the
	// synthetic root.
	NumObjects() int

	// ForEachObject iterates over all real objects (not the synthetic root).
	ForEachObject(fn func(*Object))

	// GetRoots returns the GC roots.
	GetRoots() Roots
}

// MemGraph is the in-memory Graph implementation.
type MemGraph struct {
	objects map[ObjID]*Object
	roots   Roots
}

func (g *MemGraph) GetObject(id ObjID) *Object {
	return g.objects[id]
}

func (g *MemGraph) NumObjects() int {
	return len(g.objects)
}

func (g *MemGraph) ForEachObject(fn func(*Object)) {
	for _, obj := range g.objects {
		fn(obj)
	}
}

func (g *MemGraph) GetRoots() Roots {
	return g.roots
}

// Builder assembles a Graph from a stream of records. The first sighting of
// an address, whether as a reference target or an object record, creates
// its node as a stub; a later ObjectRecord for that address overwrites its
// scalar attributes and replaces (not merges) its reference list, per the
// duplicate-object contract. No mutation is permitted after Finalize.
type Builder struct {
	objects     map[ObjID]*Object
	rootIDs     []ObjID
	rootCats    map[ObjID]string
	classNames  map[ObjID]string // class address -> resolved name, from that class's own ObjectRecord
	seenObjects map[ObjID]bool   // addresses that have had at least one ObjectRecord applied
	onDuplicate func()
	onUnknown   func()
	finalized   bool
}

// NewBuilder creates an empty Builder. onDuplicate and onUnknown, if
// non-nil, are invoked once per DuplicateObject / UnknownReference anomaly
// respectively; pass nil to ignore them.
func NewBuilder(onDuplicate, onUnknown func()) *Builder {
	return &Builder{
		objects:     make(map[ObjID]*Object),
		rootCats:    make(map[ObjID]string),
		classNames:  make(map[ObjID]string),
		seenObjects: make(map[ObjID]bool),
		onDuplicate: onDuplicate,
		onUnknown:   onUnknown,
	}
}

// nodeFor returns the node for id, creating a dangling stub (TagOther,
// zero bytes) on first sight if none exists yet.
func (b *Builder) nodeFor(id ObjID) *Object {
	if obj, ok := b.objects[id]; ok {
		return obj
	}
	obj := &Object{ID: id, Type: TagOther, Stub: true}
	b.objects[id] = obj
	return obj
}

// AddObject applies an ObjectRecord's attributes to its node. If classAddr
// is non-zero, the class's name is resolved lazily at Finalize, once every
// record (including the class's own, which may appear later in the file)
// has been seen.
func (b *Builder) AddObject(id ObjID, tag TypeTag, bytes uint64, classAddr ObjID, attr string, ptrs []ObjID) {
	if b.finalized {
		panic("graph: AddObject called after Finalize")
	}
	if b.seenObjects[id] && b.onDuplicate != nil {
		b.onDuplicate()
	}
	b.seenObjects[id] = true

	obj := b.nodeFor(id)
	obj.Stub = false
	obj.Type = tag
	obj.Bytes = bytes
	obj.ClassAddr = classAddr
	obj.Attr = attr
	obj.Ptrs = append([]ObjID(nil), ptrs...) // replace, not merge

	if (tag == TagClass || tag == TagModule || tag == TagIClass) && attr != "" {
		b.classNames[id] = attr
	}

	for _, ref := range ptrs {
		if _, ok := b.objects[ref]; !ok {
			b.nodeFor(ref)
			if b.onUnknown != nil {
				b.onUnknown()
			}
		}
	}
	if classAddr != 0 {
		if _, ok := b.objects[classAddr]; !ok {
			b.nodeFor(classAddr)
		}
	}
}

// AddRoot records a root-record reference. category is a presentation-only
// label (e.g. "machine_context", "vm", "finalizers") discarded from the
// graph structure itself; only the first category seen for a given address
// is kept, for labelling.
func (b *Builder) AddRoot(category string, refs []ObjID) {
	if b.finalized {
		panic("graph: AddRoot called after Finalize")
	}
	for _, ref := range refs {
		if _, ok := b.objects[ref]; !ok {
			b.nodeFor(ref)
			if b.onUnknown != nil {
				b.onUnknown()
			}
		}
		b.rootIDs = append(b.rootIDs, ref)
		if _, exists := b.rootCats[ref]; !exists {
			b.rootCats[ref] = category
		}
	}
}

// Finalize resolves class names, deduplicates root IDs and out-edges,
// drops self-loops, and returns the immutable Graph. No further mutation
// of the Builder is valid afterward.
func (b *Builder) Finalize() *MemGraph {
	b.finalized = true

	for _, obj := range b.objects {
		if obj.ClassAddr != 0 {
			obj.ClassName = b.classNames[obj.ClassAddr]
		}
		if len(obj.Ptrs) == 0 {
			continue
		}
		// Drop self-loops and collapse duplicate out-edges in one
		// sort+group-free pass, preserving first-seen (dump) order.
		seen := make(map[ObjID]bool, len(obj.Ptrs))
		deduped := make([]ObjID, 0, len(obj.Ptrs))
		for _, p := range obj.Ptrs {
			if p == obj.ID || seen[p] {
				continue
			}
			seen[p] = true
			deduped = append(deduped, p)
		}
		obj.Ptrs = deduped
	}

	objects := b.objects
	delete(objects, SyntheticRoot) // the synthetic root is never a reportable object

	return &MemGraph{
		objects: objects,
		roots:   Roots{IDs: dedupPreserveOrder(b.rootIDs), Categories: b.rootCats},
	}
}

func dedupPreserveOrder(ids []ObjID) []ObjID {
	seen := make(map[ObjID]bool, len(ids))
	out := make([]ObjID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
