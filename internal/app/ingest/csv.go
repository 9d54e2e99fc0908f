// internal/app/ingest/csv.go
package ingest

import (
	"encoding/csv"
	"os"
	"time"

	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

// readCSV parses a signup-form CSV export. The first line is always the
// header and is discarded; every later line goes through the extractor.
// Read errors propagate — a CSV that the parser rejects fails the whole
// request, unlike the workbook path.
func (c *Coordinator) readCSV(path, programID string) ([]models.ApplicantRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	// One time base per batch: ids are base+offset, unique within the
	// batch by construction.
	now := time.Now()
	base := now.UnixMilli()

	var out []models.ApplicantRecord
	for i, row := range rows[1:] {
		rec, ok := c.extractRow(row, programID, base+int64(i)+1, now)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
