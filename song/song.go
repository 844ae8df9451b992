package song

import (
	"github.com/hayleefay/biomusic/annotate"
	"github.com/hayleefay/biomusic/key"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/notation"
	"github.com/hayleefay/biomusic/note"
	"github.com/hayleefay/biomusic/util"
)

// Compose runs the whole protein to music pipeline. The result depends only
// on the sequence and regions, so the same input always yields the same song.
func Compose(title string, sequence string, regions []model.Region) (*model.Song, error) {
	keyName, tempo, err := key.Select(sequence)
	if err != nil {
		return nil, err
	}

	notes, durations, err := note.Map(sequence, regions, keyName)
	if err != nil {
		return nil, err
	}

	body, err := notation.Render(notes, durations)
	if err != nil {
		return nil, err
	}

	tune, err := notation.Tune(title, keyName, tempo, body)
	if err != nil {
		return nil, err
	}

	annotated, err := annotate.Regions(sequence, regions)
	if err != nil {
		return nil, err
	}

	if regions == nil {
		regions = []model.Region{}
	}
	return &model.Song{
		Title:         title,
		Sequence:      sequence,
		Regions:       regions,
		Key:           keyName,
		Tempo:         tempo,
		Notes:         notes,
		Durations:     durations,
		TotalDuration: util.Sum(durations),
		Notation:      body,
		Tune:          tune,
		Annotated:     annotated,
	}, nil
}

// FromProtein composes a song from a retrieved protein record.
func FromProtein(p *model.Protein) (*model.Song, error) {
	title := p.Name
	if title == "" {
		title = p.Accession
	}
	return Compose(title, p.Sequence, p.Regions)
}
