// ABOUTME: Writes folded-stack flame-graph data: one stack per line, semicolon-joined frames
// ABOUTME: followed by a space and the stack's weight in bytes, for a standard flame-graph renderer

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/heapdom/heapdom/analysis"
)

// WriteFlame writes one line per FlameStack: semicolon-joined frame labels,
// a space, then the weight in bytes.
func WriteFlame(w io.Writer, stacks []analysis.FlameStack) error {
	for _, s := range stacks {
		if _, err := fmt.Fprintf(w, "%s %d\n", strings.Join(s.Frames, ";"), s.Weight); err != nil {
			return err
		}
	}
	return nil
}
