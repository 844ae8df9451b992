package duration

import (
	"sort"

	"github.com/hayleefay/biomusic/constants"
	"github.com/hayleefay/biomusic/util"
)

type symbolCount struct {
	symbol rune
	count  int
}

// Rank orders the distinct symbols of sequence by descending count. Symbols
// with equal counts keep the order of their first occurrence.
func Rank(sequence string) []rune {
	var counts []symbolCount
	seen := make(map[rune]int)
	for _, r := range sequence {
		if i, ok := seen[r]; ok {
			counts[i].count++
			continue
		}
		seen[r] = len(counts)
		counts = append(counts, symbolCount{symbol: r, count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	ranked := make([]rune, len(counts))
	for i, c := range counts {
		ranked[i] = c.symbol
	}
	return ranked
}

// Classify maps every distinct symbol to its duration. The ranked symbols
// are cut into groups of four; the first group gets the longest duration
// and every group past the last tier gets the shortest.
func Classify(sequence string) map[rune]int {
	res := make(map[rune]int)
	last := len(constants.DurationTiers) - 1
	for i, symbol := range Rank(sequence) {
		group := util.Min(i/constants.DurationGroupSize, last)
		res[symbol] = constants.DurationTiers[group]
	}
	return res
}
