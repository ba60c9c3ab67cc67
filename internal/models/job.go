package models

// Job is the normalized record persisted between the fetch and apply phases.
// ID and ApplicationURL are only set by the enriched mapper.
type Job struct {
	ID             *int64 `json:"id,omitempty"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Remote         bool   `json:"isRemote"`
	URL            string `json:"url"`
	ApplicationURL string `json:"applicationUrl,omitempty"`
}
