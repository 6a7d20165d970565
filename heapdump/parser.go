// ABOUTME: Pluggable Parser contract every heap dump format implements
// ABOUTME: rubydump.Parser and JSONFixture both satisfy this to register with Open

// Package heapdump defines the extension point ingestion formats plug into:
// a Parser that can recognize its own wire format and turn it into a
// graph.Graph. Concrete formats (github.com/heapdom/heapdom/heapdump/rubydump,
// the JSONFixture below) self-register via init() so Open can dispatch to
// whichever one claims a given dump.
package heapdump

import (
	"io"

	"github.com/heapdom/heapdom/graph"
)

// Parser recognizes and decodes one heap dump wire format.
type Parser interface {
	// CanParse previews r and reports whether this parser's format matches.
	// It must not assume it can consume the whole stream — only a prefix.
	CanParse(r io.Reader) bool

	// Parse consumes r from the start and builds the object graph it
	// describes, or a wrapped errs.ErrMalformedInput on a syntax or schema
	// violation.
	Parse(r io.Reader) (graph.Graph, error)
}
