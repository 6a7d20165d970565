// ABOUTME: Lightweight JSON-array fixture parser for tests and tooling
// ABOUTME: Reads a whole-document {"objects": [...], "roots": [...]} shape, not the line-delimited dump format

package heapdump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/heapdom/heapdom/errs"
	"github.com/heapdom/heapdom/graph"
)

// JSONFixture parses a small, whole-document JSON format used by tests and
// by tooling that synthesizes graphs directly (rather than a real Ruby
// ObjectSpace dump). It exists alongside rubydump.Parser in the registry so
// integration tests can build graphs without a line-delimited fixture file.
type JSONFixture struct{}

type jsonDump struct {
	Objects []jsonObject  `json:"objects"`
	Roots   []graph.ObjID `json:"roots"`
}

type jsonObject struct {
	ID   graph.ObjID   `json:"id"`
	Type string        `json:"type"`
	Size uint64        `json:"size"`
	Ptrs []graph.ObjID `json:"ptrs"`
}

// CanParse reports whether the preview looks like our JSON fixture shape
// (presence of a top-level "objects" key).
func (p *JSONFixture) CanParse(r io.Reader) bool {
	buf := make([]byte, 1024)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	if n == 0 {
		return false
	}

	var probe struct {
		Objects json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(buf[:n], &probe); err != nil {
		return false
	}
	return probe.Objects != nil
}

// Parse decodes the whole document and builds a graph through the same
// Builder every real parser uses.
func (p *JSONFixture) Parse(r io.Reader) (graph.Graph, error) {
	var dump jsonDump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON fixture: %v", errs.ErrMalformedInput, err)
	}

	for i, obj := range dump.Objects {
		if obj.ID == 0 {
			return nil, fmt.Errorf("%w: object at index %d missing id", errs.ErrMalformedInput, i)
		}
	}

	b := graph.NewBuilder(nil, nil)
	for _, obj := range dump.Objects {
		b.AddObject(obj.ID, graph.NormalizeTag(obj.Type), obj.Size, 0, "", obj.Ptrs)
	}
	b.AddRoot("fixture", dump.Roots)

	return b.Finalize(), nil
}

func init() {
	Register(&JSONFixture{})
}
