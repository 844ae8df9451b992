package model

// Region is a closed interval [Start, Stop] of 0-based sequence positions.
type Region struct {
	Start int    `json:"start" validate:"min=0"`
	Stop  int    `json:"stop" validate:"gtefield=Start"`
	Name  string `json:"name,omitempty"`
}
