// internal/domain/models/applicant.go
package models

import "time"

// Status is the contact-pipeline state of an applicant.
// Transitions are unconstrained: any status may follow any other.
type Status string

const (
	StatusApplying    Status = "applying"
	StatusAccepted    Status = "accepted"
	StatusConsidering Status = "considering"
	StatusRegistered  Status = "registered"
	StatusCanceled    Status = "canceled"
)

// AllStatuses lists every status in display order. Stats responses are
// zero-filled from this list so the UI always sees all five buckets.
var AllStatuses = []Status{
	StatusApplying,
	StatusAccepted,
	StatusConsidering,
	StatusRegistered,
	StatusCanceled,
}

// ApplicantRecord is the canonical normalized representation of one
// signup-form spreadsheet row.
//
// Phone is the identity key: within a collection (global or per-program)
// no two records share a phone number. ID is generated at ingestion time
// and is unique within an ingestion batch.
type ApplicantRecord struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Gender          string    `json:"gender"` // "남", "여", or "" when unknown
	Age             int       `json:"age"`    // 0 means unknown
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ProgramID       string    `json:"programId,omitempty"`
	Status          Status    `json:"status"`
	ConsideringReason *string `json:"consideringReason"`
	LastContactDate string    `json:"lastContactDate"` // YYYY-MM-DD
	Notes           string    `json:"notes"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ApplicantUpdate carries a partial update to an applicant record.
// Nil fields are left untouched. ConsideringReason is not cleared when
// Status leaves "considering"; callers clear it explicitly if they want to.
type ApplicantUpdate struct {
	Name              *string `json:"name"`
	Gender            *string `json:"gender"`
	Age               *int    `json:"age"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"`
	Status            *Status `json:"status"`
	ConsideringReason *string `json:"consideringReason"`
	LastContactDate   *string `json:"lastContactDate"`
	Notes             *string `json:"notes"`
}

// ProgramStats is the aggregate view of one program's applicants,
// computed fresh from the live collection on every request.
type ProgramStats struct {
	Total              int            `json:"total"`
	StatusCount        map[Status]int `json:"statusCount"`
	ConsideringReasons map[string]int `json:"consideringReasons"`
}
