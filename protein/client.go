// Package protein retrieves protein records from NCBI Entrez and reads FASTA
// files. Conserved domains come from the Region features of a GenPept record.
package protein

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hayleefay/biomusic/config"
	"github.com/hayleefay/biomusic/model"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg *config.NCBIConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

type gbSet struct {
	Seqs []gbSeq `xml:"GBSeq"`
}

type gbSeq struct {
	Accession  string      `xml:"GBSeq_accession-version"`
	Definition string      `xml:"GBSeq_definition"`
	Sequence   string      `xml:"GBSeq_sequence"`
	Features   []gbFeature `xml:"GBSeq_feature-table>GBFeature"`
}

type gbFeature struct {
	Key        string        `xml:"GBFeature_key"`
	Intervals  []gbInterval  `xml:"GBFeature_intervals>GBInterval"`
	Qualifiers []gbQualifier `xml:"GBFeature_quals>GBQualifier"`
}

type gbInterval struct {
	From string `xml:"GBInterval_from"`
	To   string `xml:"GBInterval_to"`
}

type gbQualifier struct {
	Name  string `xml:"GBQualifier_name"`
	Value string `xml:"GBQualifier_value"`
}

func (c *Client) efetchURL(accession string) string {
	q := url.Values{}
	q.Set("db", "protein")
	q.Set("rettype", "gp")
	q.Set("retmode", "xml")
	q.Set("id", accession)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	return c.baseURL + "/efetch.fcgi?" + q.Encode()
}

// Fetch downloads the GenPept record for accession.
func (c *Client) Fetch(ctx context.Context, accession string) (*model.Protein, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.efetchURL(accession), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: efetch status %d: %s", model.ErrUpstream, resp.StatusCode, string(body))
	}

	p, err := ParseGenPept(resp.Body)
	if err != nil {
		return nil, err
	}
	if p.Accession == "" {
		p.Accession = accession
	}
	return p, nil
}

// ParseGenPept reads the first record of a GBSet document. Region feature
// intervals are 1-based in the record and 0-based in the result.
func ParseGenPept(r io.Reader) (*model.Protein, error) {
	var set gbSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("%w: could not decode record: %v", model.ErrUpstream, err)
	}
	if len(set.Seqs) == 0 {
		return nil, fmt.Errorf("%w: record has no sequence", model.ErrUpstream)
	}

	seq := set.Seqs[0]
	p := &model.Protein{
		Accession: seq.Accession,
		Name:      strings.TrimSpace(seq.Definition),
		Sequence:  strings.ToUpper(strings.Join(strings.Fields(seq.Sequence), "")),
		Regions:   []model.Region{},
	}
	for _, f := range seq.Features {
		if f.Key != "Region" || len(f.Intervals) == 0 {
			continue
		}
		from, err := strconv.Atoi(f.Intervals[0].From)
		if err != nil {
			return nil, fmt.Errorf("%w: bad interval start %q", model.ErrUpstream, f.Intervals[0].From)
		}
		to, err := strconv.Atoi(f.Intervals[0].To)
		if err != nil {
			return nil, fmt.Errorf("%w: bad interval stop %q", model.ErrUpstream, f.Intervals[0].To)
		}
		p.Regions = append(p.Regions, model.Region{
			Start: from - 1,
			Stop:  to - 1,
			Name:  qualifier(f, "region_name"),
		})
	}
	return p, nil
}

func qualifier(f gbFeature, name string) string {
	for _, q := range f.Qualifiers {
		if q.Name == name {
			return q.Value
		}
	}
	return ""
}
