package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heapdom/heapdom/graph"
)

func TestTopNTotalsUnlimited(t *testing.T) {
	totals := []TypeTotal{{Type: graph.TagObject, Bytes: 10, Count: 1}}
	assert.Equal(t, totals, TopNTotals(totals, 0))
}

func TestTopNTotalsTruncatesWithRemainder(t *testing.T) {
	totals := []TypeTotal{
		{Type: graph.TagObject, Bytes: 30, Count: 3},
		{Type: graph.TagString, Bytes: 20, Count: 2},
		{Type: graph.TagArray, Bytes: 10, Count: 1},
	}
	got := TopNTotals(totals, 1)
	assert.Len(t, got, 2)
	assert.Equal(t, totals[0], got[0])
	assert.Equal(t, remainderLabel, string(got[1].Type))
	assert.Equal(t, uint64(30), got[1].Bytes)
	assert.Equal(t, uint64(3), got[1].Count)
}

func TestTopNRetainersTruncatesWithRemainder(t *testing.T) {
	entries := []RetainerEntry{
		{ID: 1, Label: "a", Stats: graph.RetentionStats{Bytes: 50, Count: 2}},
		{ID: 2, Label: "b", Stats: graph.RetentionStats{Bytes: 20, Count: 1}},
		{ID: 3, Label: "c", Stats: graph.RetentionStats{Bytes: 5, Count: 1}},
	}
	got := TopNRetainers(entries, 2)
	assert.Len(t, got, 3)
	assert.Equal(t, remainderLabel, got[2].Label)
	assert.Equal(t, uint64(5), got[2].Stats.Bytes)
}
