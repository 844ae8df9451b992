package chord

import (
	"fmt"
	"sort"

	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/scale"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Offsets returns the harmony steps above a note at scale index idx.
func Offsets(idx int) (int, int) {
	if idx%2 == 0 {
		return 2, 4
	}
	return 3, 5
}

// Harmony returns the scale names of the two harmony notes for the note at
// idx. Near the top of the scale both notes are reflected downward, never
// just one of them.
func Harmony(s scale.Scale, idx int) (string, string, error) {
	first, second := Offsets(idx)
	size := len(s.Pitches)
	if idx+first >= size || idx+second >= size {
		first, second = -first, -second
	}
	lo, hi := idx+first, idx+second
	if lo < 0 || hi < 0 || lo >= size || hi >= size {
		return "", "", fmt.Errorf("%w: no harmony for index %d in %s",
			model.ErrLookupFailure, idx, s.Name)
	}
	return s.Pitches[lo], s.Pitches[hi], nil
}

func CreateChordKey(keys []uint8) string {
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, key := range sorted {
		res += fmt.Sprintf("%v", key)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// FromSMF groups the note-ons of every track by absolute tick. Chords come
// back in tick order with keys in the order they were struck.
func FromSMF(s *smf.SMF) []model.Chord {
	if s == nil {
		return nil
	}
	byTick := make(map[uint32]model.Keys)
	for _, events := range s.Tracks {
		var absTicks uint32
		for _, event := range events {
			absTicks += event.Delta
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				byTick[absTicks] = append(byTick[absTicks], key)
			}
		}
	}

	chords := make([]model.Chord, 0, len(byTick))
	for tick, keys := range byTick {
		chords = append(chords, model.Chord{AbsTickOffset: tick, Keys: keys})
	}
	sort.Slice(chords, func(i, j int) bool {
		return chords[i].AbsTickOffset < chords[j].AbsTickOffset
	})
	return chords
}
