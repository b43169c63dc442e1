package dto

// ImportReport aggregates the outcome of one roster import batch.
type ImportReport struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
}
