// ABOUTME: Human-readable byte-size formatting shared by every text report section
// ABOUTME: Binary (1024-based) units, KB through PB

package report

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders n using binary (1024) units, e.g. 2150400 -> "2.1 MB".
// Values under 1024 render as a bare integer with a "B" suffix.
func FormatBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	f := float64(n)
	unit := 0
	for f >= 1024 && unit < len(byteUnits)-1 {
		f /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", f, byteUnits[unit])
}
