// ABOUTME: Tests for the error taxonomy and non-fatal anomaly counters
package errs

import (
	"errors"
	"strings"
	"testing"
)

func TestMalformedInputWrapsLineNumber(t *testing.T) {
	err := MalformedInput(42, errors.New("missing type field"))
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected errors.Is(err, ErrMalformedInput) to be true")
	}
	if !strings.Contains(err.Error(), "line 42") {
		t.Errorf("expected error to mention line 42, got %q", err.Error())
	}
}

func TestNoParserWrapsSniffAndTryCounts(t *testing.T) {
	err := NoParser(4096, 2)
	if !errors.Is(err, ErrNoParser) {
		t.Errorf("expected errors.Is(err, ErrNoParser) to be true")
	}
	if !strings.Contains(err.Error(), "2 parser") || !strings.Contains(err.Error(), "4096") {
		t.Errorf("expected error to mention sniff/try counts, got %q", err.Error())
	}
}

func TestCountersEmpty(t *testing.T) {
	var c Counters
	if !c.Empty() {
		t.Error("fresh Counters should be Empty")
	}
	if c.Summary() != "" {
		t.Errorf("expected empty summary, got %q", c.Summary())
	}
}

func TestCountersSummary(t *testing.T) {
	var c Counters
	c.UnknownReference()
	c.UnknownReference()
	c.DuplicateObject()

	if c.Empty() {
		t.Error("Counters with recorded anomalies should not be Empty")
	}
	summary := c.Summary()
	if !strings.Contains(summary, "2 unknown reference") {
		t.Errorf("expected summary to mention 2 unknown references, got %q", summary)
	}
	if !strings.Contains(summary, "1 duplicate object") {
		t.Errorf("expected summary to mention 1 duplicate object, got %q", summary)
	}
}
