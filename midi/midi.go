package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hayleefay/biomusic/constants"
	"github.com/hayleefay/biomusic/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// eighth note ticks, the unit of a song duration
func unitTicks() uint32 {
	return smf.MetricTicks(constants.TicksPerQuarter).Ticks4th() / 2
}

// Build lays a song out on a single track. Every position is one chord:
// all of its keys start together and stop after the position's duration.
func Build(song *model.Song) (*smf.SMF, error) {
	if len(song.Notes) != len(song.Durations) {
		return nil, fmt.Errorf("%w: %d notes, %d durations",
			model.ErrLengthMismatch, len(song.Notes), len(song.Durations))
	}

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(float64(song.Tempo)))

	unit := unitTicks()
	for i, notes := range song.Notes {
		for _, p := range notes {
			tr.Add(0, gomidi.NoteOn(0, p.Key, constants.Velocity))
		}
		delta := uint32(song.Durations[i]) * unit
		for _, p := range notes {
			tr.Add(delta, gomidi.NoteOff(0, p.Key))
			delta = 0
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("Error adding track... %w", err)
	}
	return s, nil
}

func Write(w io.Writer, song *model.Song) error {
	s, err := Build(song)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("Error writing midi... %w", err)
	}
	return nil
}

// Read parses an SMF. A panic inside the parser comes back as an error,
// never as a nil SMF with a nil error.
func Read(r io.Reader) (s *smf.SMF, e error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s, e = &smf.SMF{}, fmt.Errorf("Error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return &smf.SMF{}, fmt.Errorf("Error parsing midi file... %w", err)
	}
	if res == nil {
		return &smf.SMF{}, errors.New("Error parsing midi file... no data")
	}
	return res, nil
}

func ReadFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &smf.SMF{}, fmt.Errorf("Error reading midi file... %w", err)
	}
	return Read(bytes.NewReader(dat))
}
