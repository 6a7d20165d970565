// ABOUTME: Top-N truncation shared by every ranked report
// ABOUTME: Appends one synthetic remainder row labelled "..." summing whatever was cut

package analysis

import "github.com/heapdom/heapdom/graph"

// remainderLabel marks the synthetic row TopNTotals/TopNRetainers appends
// to summarize whatever ranked entries were cut.
const remainderLabel = "..."

// TopNTotals truncates a by-type report to its top n entries (already
// assumed sorted descending by bytes), folding the rest into one "..." row.
func TopNTotals(totals []TypeTotal, n int) []TypeTotal {
	if n <= 0 || len(totals) <= n {
		return totals
	}
	out := make([]TypeTotal, n, n+1)
	copy(out, totals[:n])

	var rest TypeTotal
	rest.Type = remainderLabel
	for _, t := range totals[n:] {
		rest.Bytes += t.Bytes
		rest.Count += t.Count
	}
	return append(out, rest)
}

// TopNRetainers truncates a Retainers list to its top n entries, folding
// the rest into one "..." row with ID 0 (never a valid heap address since
// graph.SyntheticRoot already claims that ID and is never a retainer entry
// itself).
func TopNRetainers(entries []RetainerEntry, n int) []RetainerEntry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	out := make([]RetainerEntry, n, n+1)
	copy(out, entries[:n])

	var rest graph.RetentionStats
	for _, e := range entries[n:] {
		rest.Bytes += e.Stats.Bytes
		rest.Count += e.Stats.Count
	}
	return append(out, RetainerEntry{Label: remainderLabel, Stats: rest})
}
