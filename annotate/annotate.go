package annotate

import (
	"strings"

	"github.com/hayleefay/biomusic/constants"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/region"
)

// Regions wraps each region of sequence in highlight markers. Regions are
// walked in the order given and are neither sorted nor merged: overlapping
// or out of order regions repeat text rather than fail.
func Regions(sequence string, regions []model.Region) (string, error) {
	residues := []rune(sequence)
	if err := region.Validate(regions, len(residues)); err != nil {
		return "", err
	}

	var b strings.Builder
	cursor := 0
	for _, r := range regions {
		if r.Start > cursor {
			b.WriteString(string(residues[cursor:r.Start]))
		}
		b.WriteString(constants.OpenMark)
		b.WriteString(string(residues[r.Start : r.Stop+1]))
		b.WriteString(constants.CloseMark)
		cursor = r.Stop + 1
	}
	if cursor < len(residues) {
		b.WriteString(string(residues[cursor:]))
	}
	return b.String(), nil
}
