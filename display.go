package zungjung

import (
	"fmt"
	"sort"
	"strings"
)

// formatSets renders a decomposition as "123b | 55c | EEE".
func formatSets(sets []Set) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = s.String()
	}
	return strings.Join(parts, " | ")
}

// FormatResult formats a scored hand for terminal output: the decomposition,
// each yaku with its value (highest first), and the total.
func FormatResult(r *Result) string {
	if r == nil {
		return "Not a complete hand\n"
	}
	var sb strings.Builder
	if len(r.Sets) > 0 {
		fmt.Fprintf(&sb, "%s: %s\n", r.Shape, formatSets(r.Sets))
	} else {
		fmt.Fprintf(&sb, "%s\n", r.Shape)
	}

	// Sort a copy for display; keep the result's own order intact
	yaku := make(YakuList, len(r.Yaku))
	copy(yaku, r.Yaku)
	sort.SliceStable(yaku, func(i, j int) bool { return yaku[i].Value > yaku[j].Value })
	for _, y := range yaku {
		fmt.Fprintf(&sb, "  %-32s %4d\n", y.Name, y.Value)
	}
	fmt.Fprintf(&sb, "Total: %d point(s)\n", r.Score())
	return sb.String()
}
