// Package pitch holds the process-wide pitch table: 29 chromatic pitches
// from G1 to B3 with their frequencies, MIDI keys and ABC letters.
package pitch

import (
	"fmt"

	"github.com/hayleefay/biomusic/model"
)

type entry struct {
	frequency float64
	key       uint8
	abc       string
}

// octave 1 is written with a trailing comma, octave 2 upper case and
// octave 3 lower case
var table = map[string]entry{
	"G1":  {196.00, 55, "G,"},
	"G#1": {207.65, 56, "^G,"},
	"A1":  {220.00, 57, "A,"},
	"A#1": {233.08, 58, "^A,"},
	"B1":  {246.94, 59, "B,"},
	"C2":  {261.63, 60, "C"},
	"C#2": {277.18, 61, "^C"},
	"D2":  {293.66, 62, "D"},
	"D#2": {311.13, 63, "^D"},
	"E2":  {329.63, 64, "E"},
	"F2":  {349.23, 65, "F"},
	"F#2": {369.99, 66, "^F"},
	"G2":  {392.00, 67, "G"},
	"G#2": {415.30, 68, "^G"},
	"A2":  {440.00, 69, "A"},
	"A#2": {466.16, 70, "^A"},
	"B2":  {493.88, 71, "B"},
	"C3":  {523.25, 72, "c"},
	"C#3": {554.37, 73, "^c"},
	"D3":  {587.33, 74, "d"},
	"D#3": {622.25, 75, "^d"},
	"E3":  {659.25, 76, "e"},
	"F3":  {698.46, 77, "f"},
	"F#3": {739.99, 78, "^f"},
	"G3":  {783.99, 79, "g"},
	"G#3": {830.61, 80, "^g"},
	"A3":  {880.00, 81, "a"},
	"A#3": {932.33, 82, "^a"},
	"B3":  {987.77, 83, "b"},
}

// Get returns the pitch for a name such as "F#2".
func Get(name string) (model.Pitch, error) {
	e, ok := table[name]
	if !ok {
		return model.Pitch{}, fmt.Errorf("%w: no pitch named %q", model.ErrLookupFailure, name)
	}
	return model.Pitch{Name: name, Frequency: e.frequency, Key: e.key}, nil
}

// Letter returns the ABC notation symbol for a pitch name.
func Letter(name string) (string, error) {
	e, ok := table[name]
	if !ok {
		return "", fmt.Errorf("%w: no notation letter for %q", model.ErrLookupFailure, name)
	}
	return e.abc, nil
}
