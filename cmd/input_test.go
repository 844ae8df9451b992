package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hayleefay/biomusic/model"
	"github.com/stretchr/testify/assert"
)

func TestParseRegion(t *testing.T) {
	cases := []struct {
		in   string
		want model.Region
		ok   bool
	}{
		{"2:4", model.Region{Start: 2, Stop: 4}, true},
		{" 0 : 9 ", model.Region{Start: 0, Stop: 9}, true},
		{"2", model.Region{}, false},
		{"a:4", model.Region{}, false},
		{"2:b", model.Region{}, false},
		{"1:2:3", model.Region{}, false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseRegion(c.in)
			if c.ok {
				assert.NoError(t, err)
				assert.Equal(t, c.want, got)
			} else {
				assert.True(t, errors.Is(err, model.ErrInvalidRegion))
			}
		})
	}
}

func TestComposeFromArgument(t *testing.T) {
	f := inputFlags{regions: []string{"2:4"}, title: "arg"}
	s, err := f.compose(context.Background(), []string{"mktayiakqr"})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("arg", s.Title)
	assert.Equal("MK<mark>TAY</mark>IAKQR", s.Annotated)
}

func TestComposeFromFasta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	assert.NoError(t, os.WriteFile(path, []byte(">my protein\nMKTAY\nIAKQR\n"), 0644))

	f := inputFlags{fasta: path}
	s, err := f.compose(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "my protein", s.Title)
	assert.Equal(t, "MKTAYIAKQR", s.Sequence)
}

func TestComposeWithoutInput(t *testing.T) {
	f := inputFlags{}
	_, err := f.compose(context.Background(), nil)
	assert.Error(t, err)
}

func TestComposeHelpListsKeys(t *testing.T) {
	for _, name := range []string{"C major", "G major", "D major", "A minor", "E minor"} {
		assert.Contains(t, composeCmd.Long, name)
	}
}

func TestPrintSong(t *testing.T) {
	f := inputFlags{}
	s, err := f.compose(context.Background(), []string{"MKTAYIAKQR"})
	assert.NoError(t, err)

	var text bytes.Buffer
	assert.NoError(t, printSong(&text, s, "text"))
	assert.Contains(t, text.String(), "key: G major\n")
	assert.Contains(t, text.String(), "tempo: 120\n")
	assert.Contains(t, text.String(), "durations: A=8 I=4 K=8 M=8 Q=4 R=4 T=8 Y=4\n")

	var abc bytes.Buffer
	assert.NoError(t, printSong(&abc, s, "abc"))
	assert.True(t, strings.HasPrefix(abc.String(), "X:1\n"))

	var js bytes.Buffer
	assert.NoError(t, printSong(&js, s, "json"))
	assert.Contains(t, js.String(), `"key": "G major"`)

	assert.Error(t, printSong(&bytes.Buffer{}, s, "xml"))
}
