package action

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggestions returns up to limit names ranked closest to input, used for
// did-you-mean hints when an exact name lookup misses.
func Suggestions(input string, names []string, limit int) []string {
	if input == "" || limit <= 0 {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(input, names)
	sort.Sort(ranks)
	out := make([]string, 0, limit)
	for _, rank := range ranks {
		out = append(out, rank.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}
