package enginedetect

import "sort"

func init() {
	sortPatterns(enginePatterns)
}

// sortPatterns orders patterns by OrderHint, keeping the table order for ties.
func sortPatterns(patterns []Pattern) {
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].OrderHint < patterns[j].OrderHint
	})
}
