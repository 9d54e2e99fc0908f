// internal/app/ingest/excel.go
package ingest

import (
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

// readWorkbook parses the first sheet of an Excel export. Real exports
// often carry banner rows above the labels, so the header row is located
// heuristically; only rows strictly after it are candidates.
func (c *Coordinator) readWorkbook(path, programID string) ([]models.ApplicantRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	header := c.headerRowIndex(rows)
	now := time.Now()
	base := now.UnixMilli()

	var out []models.ApplicantRecord
	for i := header + 1; i < len(rows); i++ {
		row := rows[i]
		// Too short to reach the phone column: structural skip,
		// regardless of what the present cells hold.
		if len(row) < 8 {
			continue
		}
		rec, ok := c.extractRow(row, programID, base+int64(i), now)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// headerRowIndex returns the index of the first of the leading ten rows
// that is wide enough (more than 9 columns) and has a textual value in
// the name or phone column. Rows above it are banners; row 0 is assumed
// when nothing matches.
func (c *Coordinator) headerRowIndex(rows [][]string) int {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) > 9 && (isTextual(cell(row, c.layout.Name)) || isTextual(cell(row, c.layout.Phone))) {
			return i
		}
	}
	return 0
}

// isTextual reports whether a cell holds label-like text rather than a
// number (numeric cells come back from the sheet as digit strings).
func isTextual(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err != nil
}
