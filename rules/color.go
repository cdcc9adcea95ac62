package rules

// PluralityColor returns the most frequent color in colors, or "" if colors is empty.
// On a tie the color that reached the maximum count first wins.
func PluralityColor(colors []string) string {
	var (
		counts = make(map[string]int, len(colors))
		best   string
		bestN  int
	)

	for _, c := range colors {
		counts[c]++
		if counts[c] > bestN {
			best, bestN = c, counts[c]
		}
	}

	return best
}
