// ABOUTME: Error taxonomy for the heap dump analysis pipeline
// ABOUTME: Defines fatal sentinel errors plus a non-fatal anomaly counter

// Package errs defines the error taxonomy shared by every stage of the
// pipeline: fatal sentinels that unwind immediately, and a Counters value
// that accumulates non-fatal anomalies for a single end-of-run summary line.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fatal sentinel errors. Each pipeline stage wraps one of these with
// fmt.Errorf("%w", ...) or errors.Wrapf so callers can test with errors.Is.
var (
	// ErrMalformedInput marks a syntax or schema violation in the dump.
	ErrMalformedInput = errors.New("malformed input")
	// ErrOutputFailure marks an inability to write a requested output path.
	ErrOutputFailure = errors.New("output failure")
	// ErrBadFlag marks an unrecognized CLI option or out-of-range value.
	ErrBadFlag = errors.New("bad flag")
	// ErrUnknownReroot marks a -r address absent from the graph.
	ErrUnknownReroot = errors.New("unknown reroot address")
	// ErrNoParser marks a dump whose format no registered parser recognized.
	ErrNoParser = errors.New("no parser found for dump format")
)

// NoParser wraps ErrNoParser with how many sniff bytes were inspected and
// how many parsers were tried, so a caller sees why detection failed.
func NoParser(sniffed, triedParsers int) error {
	return errors.Wrapf(ErrNoParser, "tried %d parser(s) against %d sniffed byte(s)", triedParsers, sniffed)
}

// MalformedInput wraps err with the line number it occurred at.
func MalformedInput(line int, err error) error {
	return errors.Wrapf(ErrMalformedInput, "line %d: %v", line, err)
}

// Counters accumulates non-fatal anomalies across a run: dangling
// references materialized as stub nodes, and duplicate object records
// that were resolved last-write-wins. Zero value is ready to use.
type Counters struct {
	UnknownReferences int
	DuplicateObjects  int
}

// UnknownReference records one dangling reference resolved to a stub node.
func (c *Counters) UnknownReference() {
	c.UnknownReferences++
}

// DuplicateObject records one duplicate ObjectRecord resolved last-wins.
func (c *Counters) DuplicateObject() {
	c.DuplicateObjects++
}

// Empty reports whether no anomalies were recorded.
func (c Counters) Empty() bool {
	return c.UnknownReferences == 0 && c.DuplicateObjects == 0
}

// Summary renders a single human-readable line, or "" if Empty.
func (c Counters) Summary() string {
	if c.Empty() {
		return ""
	}
	return fmt.Sprintf("anomalies: %d unknown reference(s), %d duplicate object(s)",
		c.UnknownReferences, c.DuplicateObjects)
}
