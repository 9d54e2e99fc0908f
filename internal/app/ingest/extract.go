// internal/app/ingest/extract.go
package ingest

import (
	"strings"
	"time"

	"github.com/dohyunmoon/applytrack/internal/app/system/normalize"
	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

// Layout maps applicant fields to 0-based column positions in an export.
// Format drift in the signup tool becomes a layout change, not a code
// change.
type Layout struct {
	Name      int
	Phone     int
	Email     int
	Birthdate int
	Gender    int
}

// DefaultLayout matches the current signup-form export: columns H–L.
var DefaultLayout = Layout{
	Name:      7,
	Phone:     8,
	Email:     9,
	Birthdate: 10,
	Gender:    11,
}

func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// extractRow builds one applicant record from a positional row. Rows
// missing a name or phone produce nothing. Each field passes through its
// normalizer exactly once; unparseable values fall back to defaults
// (age 0, unformatted phone, empty gender) instead of failing the batch.
func (c *Coordinator) extractRow(row []string, programID string, id int64, now time.Time) (models.ApplicantRecord, bool) {
	name := cell(row, c.layout.Name)
	phone := cell(row, c.layout.Phone)
	if name == "" || phone == "" {
		return models.ApplicantRecord{}, false
	}

	return models.ApplicantRecord{
		ID:              id,
		Name:            name,
		Gender:          normalize.Gender(cell(row, c.layout.Gender), name),
		Age:             normalize.AgeAt(cell(row, c.layout.Birthdate), now),
		Phone:           normalize.Phone(phone),
		Email:           cell(row, c.layout.Email),
		ProgramID:       programID,
		Status:          models.StatusApplying,
		LastContactDate: now.Format("2006-01-02"),
		UpdatedAt:       now,
	}, true
}
