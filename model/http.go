package model

type ComposeRequestBody struct {
	Title    string   `json:"title" validate:"max=256"`
	Sequence string   `json:"sequence" validate:"required,min=10,alpha"`
	Regions  []Region `json:"regions" validate:"dive"`
}

type SongRequestBody struct {
	Accession string `json:"accession" validate:"required,max=64"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
