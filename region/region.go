package region

import (
	"fmt"

	"github.com/hayleefay/biomusic/model"
)

// Validate checks that every region lies within a sequence of the given
// length and that none is reversed.
func Validate(regions []model.Region, length int) error {
	for i, r := range regions {
		if r.Start < 0 || r.Stop >= length || r.Start > r.Stop {
			return fmt.Errorf("%w: region %d [%d, %d] outside [0, %d]",
				model.ErrInvalidRegion, i, r.Start, r.Stop, length-1)
		}
	}
	return nil
}

// Mask reports for each position whether it falls in any region. Regions
// must already be valid.
func Mask(regions []model.Region, length int) []bool {
	mask := make([]bool, length)
	for _, r := range regions {
		for i := r.Start; i <= r.Stop; i++ {
			mask[i] = true
		}
	}
	return mask
}
