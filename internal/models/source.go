package models

// Source mirrors a row of the sources table.
type Source struct {
	SourceID string `json:"sourceID"`
	Name     string `json:"name"`
	AuditFields
}
