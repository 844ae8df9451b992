package model

type Keys = []uint8

// Chord is a group of MIDI keys struck on the same absolute tick.
type Chord struct {
	AbsTickOffset uint32
	Keys          Keys
}
