// Package key picks the musical key and tempo of a song. Only the first ten
// residues take part: the first five choose the tempo, the next five the key.
package key

import (
	"fmt"

	"github.com/hayleefay/biomusic/constants"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/scale"
	"github.com/hayleefay/biomusic/util"
)

func Select(sequence string) (string, int, error) {
	residues := []rune(sequence)
	if len(residues) < constants.MinSequenceLength {
		return "", 0, fmt.Errorf("%w: need %d residues, got %d",
			model.ErrInputTooShort, constants.MinSequenceLength, len(residues))
	}

	span := constants.SelectorSpan
	tempo := constants.Tempos[util.SumRunes(residues[:span])%len(constants.Tempos)]
	name := scale.At(util.SumRunes(residues[span:2*span]) % scale.Count()).Name
	return name, tempo, nil
}
