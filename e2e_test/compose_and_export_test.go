//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/hayleefay/biomusic/chord"
	"github.com/hayleefay/biomusic/cmd"
	"github.com/hayleefay/biomusic/config"
	"github.com/hayleefay/biomusic/midi"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/protein"
	"github.com/stretchr/testify/assert"
)

var router http.Handler

func TestMain(m *testing.M) {
	record, err := os.ReadFile("../protein/testdata/NP_000537.xml")
	if err != nil {
		panic(err.Error())
	}
	entrez := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "NP_000537.3" {
			http.Error(w, "Failed to retrieve sequence", http.StatusBadRequest)
			return
		}
		w.Write(record)
	}))

	client := protein.NewClient(&config.NCBIConfig{BaseURL: entrez.URL})
	router = cmd.NewRouter(client, []string{"*"})

	exitVal := m.Run()

	entrez.Close()
	os.Exit(exitVal)
}

func createSongReqBody(accession string) io.Reader {
	data, err := json.Marshal(model.SongRequestBody{Accession: accession})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestSongFromAccessionE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/song", createSongReqBody("NP_000537.3"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var s model.Song
	if err := json.Unmarshal(respBody, &s); err != nil {
		panic(err.Error())
	}
	assert.Equal("cellular tumor antigen p53 isoform a [Homo sapiens]", s.Title)
	assert.Len(s.Notes, 40)
	assert.Len(s.Durations, 40)
	for i, n := range s.Notes {
		inDomain := (i >= 5 && i <= 28) || (i >= 32 && i <= 36)
		if inDomain {
			assert.Len(n, 3, "position %d", i)
		} else {
			assert.Len(n, 1, "position %d", i)
		}
	}
	assert.Equal("MEEPQ<mark>SDPSVEPPLSQETFSDLWKLLPEN</mark>NVL<mark>SPLPS</mark>QAM", s.Annotated)
}

func TestMidiFromAccessionE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/song/NP_000537.3/midi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	parsed, err := midi.Read(bytes.NewReader(respBody))
	assert.NoError(err)
	chords := chord.FromSMF(parsed)
	assert.Len(chords, 40)
	assert.Len(chords[5].Keys, 3)
	assert.Len(chords[4].Keys, 1)
}

func TestUnknownAccessionE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/song", createSongReqBody("NOPE"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Result().StatusCode)
}
