// internal/domain/models/program.go
package models

// Program is a bootcamp cohort/track that applicants may be scoped to.
// The catalog is static reference data; ingestion never mutates it.
type Program struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
