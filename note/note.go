// Package note walks a sequence once and gives every residue its pitches and
// duration. Residues inside a region are voiced as chords.
package note

import (
	"fmt"

	"github.com/hayleefay/biomusic/chord"
	"github.com/hayleefay/biomusic/duration"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/pitch"
	"github.com/hayleefay/biomusic/region"
	"github.com/hayleefay/biomusic/scale"
)

// Base returns the scale note a residue maps to and its index in the scale.
func Base(s scale.Scale, residue rune) (string, int) {
	idx := int(residue) % len(s.Pitches)
	return s.Pitches[idx], idx
}

func voice(s scale.Scale, residue rune, inDomain bool) (model.Notes, error) {
	name, idx := Base(s, residue)
	base, err := pitch.Get(name)
	if err != nil {
		return nil, err
	}
	if !inDomain {
		return model.Notes{base}, nil
	}

	firstName, secondName, err := chord.Harmony(s, idx)
	if err != nil {
		return nil, err
	}
	first, err := pitch.Get(firstName)
	if err != nil {
		return nil, err
	}
	second, err := pitch.Get(secondName)
	if err != nil {
		return nil, err
	}
	return model.Notes{first, second, base}, nil
}

func Map(sequence string, regions []model.Region, keyName string) ([]model.Notes, []int, error) {
	s, err := scale.Get(keyName)
	if err != nil {
		return nil, nil, err
	}

	residues := []rune(sequence)
	if err := region.Validate(regions, len(residues)); err != nil {
		return nil, nil, err
	}
	inDomain := region.Mask(regions, len(residues))
	durations := duration.Classify(sequence)

	notes := make([]model.Notes, len(residues))
	lengths := make([]int, len(residues))
	for i, r := range residues {
		n, err := voice(s, r, inDomain[i])
		if err != nil {
			return nil, nil, fmt.Errorf("position %d: %w", i, err)
		}
		notes[i] = n
		lengths[i] = durations[r]
	}
	return notes, lengths, nil
}
