package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFewerThanFourSymbols(t *testing.T) {
	assert.Equal(t, map[rune]int{'A': 8, 'B': 8, 'C': 8}, Classify("AABAC"))
}

func TestRankTieBreakIsFirstOccurrence(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]rune{'A', 'B', 'C'}, Rank("AABAC"))
	assert.Equal([]rune{'K', 'A', 'M', 'T', 'Y', 'I', 'Q', 'R'}, Rank("MKTAYIAKQR"))
	assert.Equal([]rune{'C', 'B', 'A'}, Rank("CBA"))
}

func TestClassifyTiers(t *testing.T) {
	// 14 distinct symbols, counts strictly decreasing from A
	seq := ""
	symbols := "ABCDEFGHIJKLMN"
	for i, r := range symbols {
		for n := 0; n < len(symbols)-i; n++ {
			seq += string(r)
		}
	}

	got := Classify(seq)

	assert := assert.New(t)
	assert.Len(got, 14)
	for _, r := range "ABCD" {
		assert.Equal(8, got[r], string(r))
	}
	for _, r := range "EFGH" {
		assert.Equal(4, got[r], string(r))
	}
	for _, r := range "IJKL" {
		assert.Equal(2, got[r], string(r))
	}
	for _, r := range "MN" {
		assert.Equal(1, got[r], string(r))
	}
}

func TestClassifyEmpty(t *testing.T) {
	assert.Empty(t, Classify(""))
}
