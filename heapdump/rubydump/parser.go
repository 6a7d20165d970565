// ABOUTME: Parser for the Ruby ObjectSpace.dump_all line-delimited JSON heap dump format
// ABOUTME: Streams the file line by line into a graph.Builder with bounded memory

// Package rubydump implements heapdump.Parser for the record-per-line JSON
// format produced by Ruby's ObjectSpace.dump_all: one tagged dictionary per
// line, addresses as hex strings, an optional ROOT record per GC root
// category.
package rubydump

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heapdom/heapdom/errs"
	"github.com/heapdom/heapdom/graph"
	"github.com/heapdom/heapdom/heapdump"
)

// maxLineLength bounds a single record's length for the scanner's buffer.
const maxLineLength = 4 * 1024 * 1024

// Parser implements heapdump.Parser. Counters accumulates the non-fatal
// anomalies seen across a Parse call (dangling references, duplicate
// object records); it is valid to read once Parse returns.
type Parser struct {
	Counters errs.Counters
}

var _ heapdump.Parser = (*Parser)(nil)

// rawLine mirrors the dump's per-line schema. Every field but type is
// optional at decode time; Parse rejects an object record (any type other
// than ROOT) that has no address.
type rawLine struct {
	Address    *string  `json:"address"`
	Memsize    *uint64  `json:"memsize"`
	References []string `json:"references"`
	Type       string   `json:"type"`
	Class      *string  `json:"class"`
	Root       *string  `json:"root"`
	Name       *string  `json:"name"`
	Length     *uint64  `json:"length"`
	Size       *uint64  `json:"size"`
	Value      *string  `json:"value"`
}

// CanParse sniffs the preview for a line beginning with '{' that decodes as
// an object carrying a "type" key — the one field every record, root or
// object, is guaranteed to have.
func (p *Parser) CanParse(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "{") {
			return false
		}
		var probe struct {
			Type json.RawMessage `json:"type"`
		}
		if err := json.Unmarshal([]byte(line), &probe); err != nil {
			return false
		}
		return probe.Type != nil
	}
	return false
}

// Parse streams the dump line by line, classifying each record and feeding
// it to a graph.Builder. Line numbers in errors are 1-based.
func (p *Parser) Parse(r io.Reader) (graph.Graph, error) {
	b := graph.NewBuilder(p.Counters.DuplicateObject, p.Counters.UnknownReference)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawLine
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, errs.MalformedInput(lineNum, fmt.Errorf("not a record: %w", err))
		}
		if raw.Type == "" {
			return nil, errs.MalformedInput(lineNum, fmt.Errorf("missing type field"))
		}

		if raw.Type == "ROOT" {
			refs, err := parseAddresses(raw.References)
			if err != nil {
				return nil, errs.MalformedInput(lineNum, err)
			}
			category := "vm"
			if raw.Root != nil {
				category = *raw.Root
			}
			b.AddRoot(category, refs)
			continue
		}

		if raw.Address == nil {
			return nil, errs.MalformedInput(lineNum, fmt.Errorf("object record missing address"))
		}
		addr, err := parseAddress(*raw.Address)
		if err != nil {
			return nil, errs.MalformedInput(lineNum, err)
		}

		refs, err := parseAddresses(raw.References)
		if err != nil {
			return nil, errs.MalformedInput(lineNum, err)
		}

		var classAddr graph.ObjID
		if raw.Class != nil {
			classAddr, err = parseAddress(*raw.Class)
			if err != nil {
				return nil, errs.MalformedInput(lineNum, err)
			}
		}

		tag := graph.NormalizeTag(raw.Type)
		var bytes uint64
		if raw.Memsize != nil {
			bytes = *raw.Memsize
		}

		b.AddObject(addr, tag, bytes, classAddr, attrFor(tag, raw), refs)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.MalformedInput(lineNum+1, fmt.Errorf("reading line: %w", err))
	}

	return b.Finalize(), nil
}

// attrFor computes the short attribute attached to an object's label: a
// truncated string value, an array length, a hash size, or a class/module
// name (resolved by other objects via their class field at Finalize).
func attrFor(tag graph.TypeTag, raw rawLine) string {
	switch tag {
	case graph.TagString:
		if raw.Value != nil {
			return graph.TruncateValue(*raw.Value, 40)
		}
	case graph.TagArray:
		if raw.Length != nil {
			return fmt.Sprintf("len=%d", *raw.Length)
		}
	case graph.TagHash:
		if raw.Size != nil {
			return fmt.Sprintf("size=%d", *raw.Size)
		}
	case graph.TagClass, graph.TagModule, graph.TagIClass:
		if raw.Name != nil {
			return *raw.Name
		}
	}
	return ""
}

func parseAddress(s string) (graph.ObjID, error) {
	hex := strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return graph.ObjID(v), nil
}

func parseAddresses(ss []string) ([]graph.ObjID, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	out := make([]graph.ObjID, 0, len(ss))
	for _, s := range ss {
		addr, err := parseAddress(s)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

func init() {
	heapdump.Register(&Parser{})
}
