package protein

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/hayleefay/biomusic/config"
	"github.com/hayleefay/biomusic/model"
	"github.com/stretchr/testify/assert"
)

func fakeEntrez(t *testing.T) *httptest.Server {
	t.Helper()
	record, err := os.ReadFile("testdata/NP_000537.xml")
	if err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/efetch.fcgi", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("db") != "protein" || q.Get("rettype") != "gp" || q.Get("retmode") != "xml" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		if q.Get("id") != "NP_000537.3" {
			http.Error(w, "Failed to retrieve sequence", http.StatusBadRequest)
			return
		}
		w.Write(record)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := fakeEntrez(t)
	c := NewClient(&config.NCBIConfig{BaseURL: srv.URL})

	p, err := c.Fetch(context.Background(), "NP_000537.3")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("NP_000537.3", p.Accession)
	assert.Equal("cellular tumor antigen p53 isoform a [Homo sapiens]", p.Name)
	assert.Equal("MEEPQSDPSVEPPLSQETFSDLWKLLPENNVLSPLPSQAM", p.Sequence)
	assert.Equal([]model.Region{
		{Start: 5, Stop: 28, Name: "P53_TAD"},
		{Start: 32, Stop: 36},
	}, p.Regions)
}

func TestFetchUpstreamError(t *testing.T) {
	srv := fakeEntrez(t)
	c := NewClient(&config.NCBIConfig{BaseURL: srv.URL})

	_, err := c.Fetch(context.Background(), "NOPE")
	assert.True(t, errors.Is(err, model.ErrUpstream))
}

func TestFetchCancelled(t *testing.T) {
	srv := fakeEntrez(t)
	c := NewClient(&config.NCBIConfig{BaseURL: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Fetch(ctx, "NP_000537.3")
	assert.Error(t, err)
}

func TestEfetchURLCarriesAPIKey(t *testing.T) {
	c := NewClient(&config.NCBIConfig{BaseURL: "https://example.org/eutils", APIKey: "secret"})
	assert.Equal(t,
		"https://example.org/eutils/efetch.fcgi?api_key=secret&db=protein&id=P04637&retmode=xml&rettype=gp",
		c.efetchURL("P04637"))
}

func TestParseGenPeptEmpty(t *testing.T) {
	_, err := ParseGenPept(stringsReader("<GBSet></GBSet>"))
	assert.True(t, errors.Is(err, model.ErrUpstream))

	_, err = ParseGenPept(stringsReader("not xml"))
	assert.True(t, errors.Is(err, model.ErrUpstream))
}
