package models

// SearchParams is the explicit configuration of one fetch run.
type SearchParams struct {
	QueryTemplate string
	ApplyTemplate string
	Queries       []string
	Limit         int
	RemoteOnly    bool
	Enrich        bool
}
