// internal/app/store/applicants/store.go

// Package applicantstore keeps the applicant collections: one global
// collection plus one collection per program. The two overlap — a record
// ingested under a program usually also lands in the global collection —
// but each collection enforces phone uniqueness independently.
package applicantstore

import (
	"context"
	"errors"
	"time"

	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

// ErrNotFound is returned when no applicant with the requested id exists
// in the targeted scope.
var ErrNotFound = errors.New("applicant not found")

// Store is the collection interface the rest of the app depends on.
// The ingestion pipeline and the HTTP handlers only see this, which keeps
// them testable without a live process.
type Store interface {
	// ListAll returns the global collection in insertion order.
	ListAll(ctx context.Context) []models.ApplicantRecord

	// ListByProgram returns one program's collection in insertion order.
	// Unknown programs yield an empty slice, not an error.
	ListByProgram(ctx context.Context, programID string) []models.ApplicantRecord

	// AppendGlobal adds the candidates whose phone is not already in the
	// global collection and returns the records actually added.
	AppendGlobal(ctx context.Context, recs []models.ApplicantRecord) []models.ApplicantRecord

	// AppendToProgram does the same against a program's collection.
	AppendToProgram(ctx context.Context, programID string, recs []models.ApplicantRecord) []models.ApplicantRecord

	// Update merges a partial update into the record with the given id.
	// With programID empty the global collection is the targeted scope;
	// otherwise the program's collection is. The record's copy in the
	// other collection(s) is patched too when present. UpdatedAt is
	// refreshed to now on every copy touched.
	Update(ctx context.Context, id int64, programID string, upd models.ApplicantUpdate, now time.Time) (models.ApplicantRecord, error)

	// StatsByProgram aggregates a program's collection: total, a
	// zero-filled status histogram, and consideringReason counts over
	// records currently in the considering status.
	StatsByProgram(ctx context.Context, programID string) models.ProgramStats

	// Count returns the size of the global collection.
	Count(ctx context.Context) int
}
