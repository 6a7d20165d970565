// ABOUTME: Format-sniffing registry: dispatches an opened dump to whichever registered Parser claims it
// ABOUTME: Parsers self-register via init(), so adding a new dump format never touches this file

package heapdump

import (
	"bytes"
	"io"
	"sync"

	"github.com/heapdom/heapdom/errs"
	"github.com/heapdom/heapdom/graph"
)

// sniffWindow bounds how much of a dump is buffered for format detection
// before a parser is chosen. Every registered parser's CanParse sees the
// same window; none of it is lost once a parser is selected, since Open
// stitches the sniffed bytes back onto the front of the stream Parse sees.
const sniffWindow = 4096

type parserRegistry struct {
	mu      sync.RWMutex
	parsers []Parser
}

var registry = &parserRegistry{}

// Register adds a parser to the global registry. Intended to be called from
// a parser package's init(), e.g. heapdump/rubydump.
func Register(p Parser) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.parsers = append(registry.parsers, p)
}

// Open sniffs r against every registered parser and parses the full stream
// with whichever one first claims the format. Parsers are tried in
// registration order; the first match wins.
func Open(r io.Reader) (graph.Graph, error) {
	sniff := make([]byte, sniffWindow)
	n, err := io.ReadFull(r, sniff)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	sniff = sniff[:n]

	registry.mu.RLock()
	candidates := make([]Parser, len(registry.parsers))
	copy(candidates, registry.parsers)
	registry.mu.RUnlock()

	for _, p := range candidates {
		if p.CanParse(bytes.NewReader(sniff)) {
			return p.Parse(io.MultiReader(bytes.NewReader(sniff), r))
		}
	}

	return nil, errs.NoParser(n, len(candidates))
}
