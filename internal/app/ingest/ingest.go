// internal/app/ingest/ingest.go

// Package ingest turns uploaded signup-form spreadsheets (CSV or Excel)
// into normalized applicant records and merges them into the applicant
// store. It is the only write path that creates records.
package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	applicantstore "github.com/dohyunmoon/applytrack/internal/app/store/applicants"
	"github.com/dohyunmoon/applytrack/internal/domain/models"
	"go.uber.org/zap"
)

// ErrUnsupportedType rejects uploads that are neither CSV nor Excel.
var ErrUnsupportedType = errors.New("unsupported file type: only .csv, .xlsx and .xls are accepted")

// Coordinator dispatches an uploaded file to the right reader and merges
// the resulting records into the store, deduplicating by phone number.
type Coordinator struct {
	store  applicantstore.Store
	layout Layout
	log    *zap.Logger
}

// New returns a Coordinator using the default signup-form column layout.
func New(store applicantstore.Store, logger *zap.Logger) *Coordinator {
	return NewWithLayout(store, DefaultLayout, logger)
}

// NewWithLayout returns a Coordinator for exports with a non-default
// column arrangement.
func NewWithLayout(store applicantstore.Store, layout Layout, logger *zap.Logger) *Coordinator {
	return &Coordinator{store: store, layout: layout, log: logger}
}

// Ingest parses the file at path and appends the new records.
//
// originalName supplies the extension that selects the reader; path is a
// temporary copy of the upload and is removed before Ingest returns, on
// every path — success, empty result or parse failure.
//
// With a programID the candidates are first merged into that program's
// collection, and only the records new to the program are then offered
// to the global collection. A phone already known globally under another
// scope therefore enters the program collection without touching the
// global one. The returned count is what was appended to the primary
// target (the program collection when scoped, the global one otherwise).
func (c *Coordinator) Ingest(ctx context.Context, path, originalName, programID string) (int, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			c.log.Warn("temp upload not removed", zap.String("path", path), zap.Error(err))
		}
	}()

	var recs []models.ApplicantRecord
	switch ext := strings.ToLower(filepath.Ext(originalName)); ext {
	case ".csv":
		var err error
		recs, err = c.readCSV(path, programID)
		if err != nil {
			return 0, err
		}
	case ".xlsx", ".xls":
		var err error
		recs, err = c.readWorkbook(path, programID)
		if err != nil {
			// A malformed workbook degrades to an empty batch rather
			// than failing the request.
			c.log.Warn("workbook parse failed, nothing ingested",
				zap.String("file", originalName), zap.Error(err))
			recs = nil
		}
	default:
		return 0, ErrUnsupportedType
	}

	if programID != "" {
		added := c.store.AppendToProgram(ctx, programID, recs)
		c.store.AppendGlobal(ctx, added)
		return len(added), nil
	}
	return len(c.store.AppendGlobal(ctx, recs)), nil
}
