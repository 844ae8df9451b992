package model

type Song struct {
	Title         string   `json:"title"`
	Sequence      string   `json:"sequence"`
	Regions       []Region `json:"regions"`
	Key           string   `json:"key"`
	Tempo         int      `json:"tempo"`
	Notes         []Notes  `json:"notes"`
	Durations     []int    `json:"durations"`
	TotalDuration uint64   `json:"total_duration"`
	Notation      string   `json:"notation"`
	Tune          string   `json:"tune"`
	Annotated     string   `json:"annotated"`
}

// Protein is a record retrieved from the protein database.
type Protein struct {
	Accession string
	Name      string
	Sequence  string
	Regions   []Region
}
