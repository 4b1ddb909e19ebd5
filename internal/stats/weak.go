package stats

import (
	"sort"

	"github.com/verte-zerg/keix/internal/model"
)

// SelectWeakChars selects the lowest-accuracy characters from aggregates.
// Characters never typed count as fully accurate.
func SelectWeakChars(aggs []model.CharAggregate, top int) map[rune]struct{} {
	weakSet := map[rune]struct{}{}
	if len(aggs) == 0 {
		return weakSet
	}
	candidates := make([]model.CharAggregate, len(aggs))
	copy(candidates, aggs)
	sort.Slice(candidates, func(i, j int) bool {
		ai := weakScore(candidates[i])
		aj := weakScore(candidates[j])
		if ai == aj {
			return candidates[i].Char < candidates[j].Char
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for _, c := range candidates[:top] {
		if runes := []rune(c.Char); len(runes) > 0 {
			weakSet[runes[0]] = struct{}{}
		}
	}
	return weakSet
}

func weakScore(agg model.CharAggregate) float64 {
	if agg.Correct+agg.Incorrect == 0 {
		return 1.0
	}
	return Accuracy(agg.Correct, agg.Incorrect)
}
