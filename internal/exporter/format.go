package exporter

import (
	"fmt"
	"strconv"
)

// formatPercent renders a percentage with two decimal places and a
// percent sign, e.g. "12.34%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// formatInt renders an integer count.
func formatInt(v int) string {
	return strconv.Itoa(v)
}
