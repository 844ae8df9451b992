package notation

import (
	"fmt"
	"strings"

	"github.com/hayleefay/biomusic/constants"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/pitch"
	"github.com/hayleefay/biomusic/scale"
)

// Render writes one bracketed group per position between an opening and a
// closing bar. Every pitch is written as its ABC letter followed by the
// position's duration.
func Render(notes []model.Notes, durations []int) (string, error) {
	if len(notes) != len(durations) {
		return "", fmt.Errorf("%w: %d notes, %d durations",
			model.ErrLengthMismatch, len(notes), len(durations))
	}

	var b strings.Builder
	b.WriteString(constants.OpenBar)
	for i, n := range notes {
		b.WriteString("[")
		for _, p := range n {
			letter, err := pitch.Letter(p.Name)
			if err != nil {
				return "", fmt.Errorf("position %d: %w", i, err)
			}
			b.WriteString(letter)
			fmt.Fprintf(&b, "%d", durations[i])
		}
		b.WriteString("]")
		if i%constants.PositionsPerLine == 0 && i != 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString(constants.CloseBar)
	return b.String(), nil
}

// Tune wraps a rendered body in an ABC header. The unit note length is an
// eighth so a duration of 8 is a whole note.
func Tune(title string, keyName string, tempo int, body string) (string, error) {
	s, err := scale.Get(keyName)
	if err != nil {
		return "", err
	}
	if title == "" {
		title = "Untitled"
	}

	var b strings.Builder
	b.WriteString("X:1\n")
	fmt.Fprintf(&b, "T:%s\n", strings.ReplaceAll(title, "\n", " "))
	b.WriteString("M:4/4\n")
	b.WriteString("L:1/8\n")
	fmt.Fprintf(&b, "Q:1/4=%d\n", tempo)
	fmt.Fprintf(&b, "K:%s\n", s.ABCKey)
	b.WriteString(body)
	b.WriteString("\n")
	return b.String(), nil
}
