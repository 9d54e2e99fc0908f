// Package testutil provides fixture builders for spreadsheet ingestion
// and handler tests: signup-form rows, CSV text, and xlsx workbooks.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// SignupRow pads a signup-form row out to the export width, placing the
// applicant fields in columns H–L where the ingestion layout expects them.
func SignupRow(name, phone, email, birthdate, gender string) []string {
	return []string{"", "", "", "", "", "", "", name, phone, email, birthdate, gender}
}

// SignupCSV renders rows as a CSV export body with a throwaway header
// line, matching the shape of a real signup-form download.
func SignupCSV(rows ...[]string) string {
	var b strings.Builder
	b.WriteString("a,b,c,d,e,f,g,이름,연락처,이메일,생년월일,성별\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// TempFile writes content under a temp directory and returns the path.
// The name's extension is kept because it selects the ingestion parser.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// WorkbookFile builds a one-sheet xlsx workbook whose rows are the given
// string slices, in order, and returns its path.
func WorkbookFile(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "upload.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture workbook: %v", err)
	}
	return path
}
