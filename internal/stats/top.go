package stats

import (
	"cmp"
	"slices"

	"github.com/verte-zerg/keix/internal/model"
)

// TopCharsByFrequency returns the n most typed characters, spaces excluded.
func TopCharsByFrequency(aggs []model.CharAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	sorted := slices.Clone(aggs)
	slices.SortFunc(sorted, func(a, b model.CharAggregate) int {
		if c := cmp.Compare(b.Correct+b.Incorrect, a.Correct+a.Incorrect); c != 0 {
			return c
		}
		return cmp.Compare(a.Char, b.Char)
	})
	out := make([]string, 0, n)
	for _, agg := range sorted {
		if len(out) == n {
			break
		}
		if agg.Char == " " {
			continue
		}
		out = append(out, agg.Char)
	}
	return out
}
