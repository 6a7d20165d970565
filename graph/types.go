// ABOUTME: Core data types for the heap object graph
// ABOUTME: Defines ObjID, Object, TypeTag, and the synthetic root sentinel

package graph

import (
	"fmt"
	"strings"
)

// ObjID is a heap object's address, doubling as its node identifier.
// ObjID(0) is reserved for the synthetic root and never collides with a
// real heap address.
type ObjID uint64

// SyntheticRoot is the sentinel node with outgoing edges to every
// root-record referent. It has no incoming edges and no immediate
// dominator of its own.
const SyntheticRoot ObjID = 0

// TypeTag is one of the closed set of object kinds a Ruby heap dump
// describes. Unrecognized tags degrade to TagOther, never fail the parse.
type TypeTag string

const (
	TagRoot     TypeTag = "ROOT"
	TagString   TypeTag = "STRING"
	TagArray    TypeTag = "ARRAY"
	TagHash     TypeTag = "HASH"
	TagClass    TypeTag = "CLASS"
	TagObject   TypeTag = "OBJECT"
	TagThread   TypeTag = "THREAD"
	TagModule   TypeTag = "MODULE"
	TagIClass   TypeTag = "ICLASS"
	TagSymbol   TypeTag = "SYMBOL"
	TagRegexp   TypeTag = "REGEXP"
	TagFile     TypeTag = "FILE"
	TagData     TypeTag = "DATA"
	TagMatch    TypeTag = "MATCH"
	TagComplex  TypeTag = "COMPLEX"
	TagRational TypeTag = "RATIONAL"
	TagBignum   TypeTag = "BIGNUM"
	TagFloat    TypeTag = "FLOAT"
	TagStruct   TypeTag = "STRUCT"
	TagNode     TypeTag = "NODE"
	TagOther    TypeTag = "other"
)

var knownTags = map[TypeTag]bool{
	TagRoot: true, TagString: true, TagArray: true, TagHash: true,
	TagClass: true, TagObject: true, TagThread: true, TagModule: true,
	TagIClass: true, TagSymbol: true, TagRegexp: true, TagFile: true,
	TagData: true, TagMatch: true, TagComplex: true, TagRational: true,
	TagBignum: true, TagFloat: true, TagStruct: true, TagNode: true,
}

// NormalizeTag maps an arbitrary dump-supplied tag onto the closed set,
// degrading anything unrecognized to TagOther.
func NormalizeTag(raw string) TypeTag {
	tag := TypeTag(raw)
	if knownTags[tag] {
		return tag
	}
	return TagOther
}

// Object is a single heap node: a real object, a stub for a dangling
// reference, or the synthetic root.
type Object struct {
	ID        ObjID
	Type      TypeTag
	Bytes     uint64
	ClassAddr ObjID // 0 if absent
	ClassName string
	Attr      string // short attribute used for label formatting: truncated value, length, or size
	Ptrs      []ObjID
	Stub      bool // true if materialized for a dangling reference, never seen as an ObjectRecord
}

// Roots is the set of addresses referenced by root records, grouped by
// category label for presentation only; the category plays no role in
// graph construction beyond that.
type Roots struct {
	IDs        []ObjID
	Categories map[ObjID]string
}

// Label renders the human-display label for an object: Type[0xADDR] plus an
// optional bracketed attribute, e.g. "Hash[0x7f83df87dc40][size=5]",
// "String[0x7f83df87dc40][abc...]", "Thread[0x7f83df87dc40]". Labels are for
// display only and must never be parsed back.
func Label(obj *Object) string {
	if obj.ID == SyntheticRoot {
		return "ROOT"
	}
	kind := string(obj.Type)
	if len(kind) > 1 {
		kind = kind[:1] + strings.ToLower(kind[1:])
	}
	if obj.ClassName != "" {
		return fmt.Sprintf("%s[0x%x][%s]", kind, uint64(obj.ID), obj.ClassName)
	}
	if obj.Attr != "" {
		return fmt.Sprintf("%s[0x%x][%s]", kind, uint64(obj.ID), obj.Attr)
	}
	return fmt.Sprintf("%s[0x%x]", kind, uint64(obj.ID))
}

// TruncateValue truncates a STRING object's literal value to at most n
// runes, appending an ellipsis marker when truncated.
func TruncateValue(v string, n int) string {
	r := []rune(v)
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}
