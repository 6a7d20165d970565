// ABOUTME: Writes the plain-text ranked-table summary, sections separated by blank lines
// ABOUTME: Each section is led by a title line, per the standard-output contract

package report

import (
	"fmt"
	"io"

	"github.com/heapdom/heapdom/analysis"
	"github.com/heapdom/heapdom/graph"
)

// WriteText renders every section of rep to w: in-use, retained, and
// unreachable totals by type, the ranked retainers list, and (for a
// re-rooted analysis) the leaked-out set. n truncates each ranked list to
// its top n entries plus a "..." remainder row; n <= 0 means unlimited.
func WriteText(w io.Writer, rep *analysis.Report, n int) error {
	sections := []struct {
		title string
		write func(io.Writer) error
	}{
		{"In-Use By Type", func(w io.Writer) error { return writeTotals(w, analysis.TopNTotals(rep.InUseByType, n)) }},
		{"Retained By Type", func(w io.Writer) error { return writeTotals(w, analysis.TopNTotals(rep.RetainedByType, n)) }},
		{"Unreachable By Type", func(w io.Writer) error { return writeTotals(w, analysis.TopNTotals(rep.UnreachableByType, n)) }},
		{"Retainers", func(w io.Writer) error { return writeRetainers(w, analysis.TopNRetainers(rep.Retainers, n)) }},
	}

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", s.title); err != nil {
			return err
		}
		if err := s.write(w); err != nil {
			return err
		}
	}

	if rep.LeakedOut != nil {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Leaked-Out Set\n"); err != nil {
			return err
		}
		if err := writeLeakedOut(w, rep.LeakedOut); err != nil {
			return err
		}
	}

	return nil
}

func writeTotals(w io.Writer, totals []analysis.TypeTotal) error {
	for _, t := range totals {
		if _, err := fmt.Fprintf(w, "  %-20s %10s  %6d objects\n", t.Type, FormatBytes(t.Bytes), t.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeRetainers(w io.Writer, entries []analysis.RetainerEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "  %-40s %10s  %6d objects\n", e.Label, FormatBytes(e.Stats.Bytes), e.Stats.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeLeakedOut(w io.Writer, ids []graph.ObjID) error {
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "  0x%x\n", uint64(id)); err != nil {
			return err
		}
	}
	return nil
}
