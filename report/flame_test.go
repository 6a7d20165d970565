package report

import (
	"bytes"
	"testing"

	"github.com/heapdom/heapdom/analysis"
)

func TestWriteFlame(t *testing.T) {
	stacks := []analysis.FlameStack{
		{Frames: []string{"ROOT", "OBJECT", "STRING"}, Weight: 25},
	}
	var buf bytes.Buffer
	if err := WriteFlame(&buf, stacks); err != nil {
		t.Fatalf("WriteFlame failed: %v", err)
	}
	want := "ROOT;OBJECT;STRING 25\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
