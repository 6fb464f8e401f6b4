package usecase

import (
	"regexp"
	"strconv"
)

var digitRuns = regexp.MustCompile(`\d+`)

// parseSelection extracts the 1-based positions written by the client,
// deduplicated in order of appearance and limited to [1, count].
func parseSelection(text string, count int) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, run := range digitRuns.FindAllString(text, -1) {
		n, err := strconv.Atoi(run)
		if err != nil || n < 1 || n > count || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
