package model

// Pitch is a named entry of the pitch table. The name is the stable lookup
// key; Frequency is carried for audio renderers.
type Pitch struct {
	Name      string  `json:"name"`
	Frequency float64 `json:"frequency"`
	Key       uint8   `json:"-"`
}

// Notes holds the pitches sounded at one sequence position: one pitch, or
// two harmony pitches followed by the base pitch inside a region.
type Notes = []Pitch
