package scale

import (
	"fmt"

	"github.com/hayleefay/biomusic/model"
)

type Scale struct {
	Name string
	// key field of an ABC tune header
	ABCKey  string
	Pitches []string
}

// order matters: the key selector indexes into it
var scales = []Scale{
	{"C major", "C", []string{"G1", "A1", "B1", "C2", "D2", "E2", "F2", "G2", "A2", "B2", "C3", "D3", "E3", "F3", "G3", "A3", "B3"}},
	{"G major", "G", []string{"G1", "A1", "B1", "C2", "D2", "E2", "F#2", "G2", "A2", "B2", "C3", "D3", "E3", "F#3", "G3", "A3", "B3"}},
	{"D major", "D", []string{"G1", "A1", "B1", "C#2", "D2", "E2", "F#2", "G2", "A2", "B2", "C#3", "D3", "E3", "F#3", "G3", "A3", "B3"}},
	{"A minor", "Am", []string{"G#1", "A1", "B1", "C2", "D2", "E2", "F2", "G#2", "A2", "B2", "C3", "D3", "E3", "F3", "G#3", "A3", "B3"}},
	{"E minor", "Em", []string{"G1", "A1", "B1", "C2", "D#2", "E2", "F#2", "G2", "A2", "B2", "C3", "D#3", "E3", "F#3", "G3", "A3", "B3"}},
}

func Count() int {
	return len(scales)
}

func Names() []string {
	names := make([]string, len(scales))
	for i, s := range scales {
		names[i] = s.Name
	}
	return names
}

// At returns the scale at position i of the selection order.
func At(i int) Scale {
	return scales[i]
}

func Get(name string) (Scale, error) {
	for _, s := range scales {
		if s.Name == name {
			return s, nil
		}
	}
	return Scale{}, fmt.Errorf("%w: %q", model.ErrUnknownKey, name)
}
