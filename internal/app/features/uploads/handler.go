// Package uploads receives signup-form spreadsheet uploads and runs them
// through the ingestion pipeline.
package uploads

import (
	"errors"
	"net/http"

	"github.com/dohyunmoon/applytrack/internal/app/features/shared/apijson"
	"github.com/dohyunmoon/applytrack/internal/app/ingest"
	"github.com/dohyunmoon/applytrack/internal/app/system/formutil"
	"github.com/dohyunmoon/applytrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for spreadsheet uploads.
type Handler struct {
	Ingest         *ingest.Coordinator
	UploadDir      string
	MaxUploadBytes int64
	Log            *zap.Logger
}

// NewHandler constructs an uploads Handler.
func NewHandler(coordinator *ingest.Coordinator, uploadDir string, maxUploadBytes int64, logger *zap.Logger) *Handler {
	return &Handler{
		Ingest:         coordinator,
		UploadDir:      uploadDir,
		MaxUploadBytes: maxUploadBytes,
		Log:            logger,
	}
}

// uploadResponse reports how many records an upload added.
type uploadResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// HandleUpload handles POST /api/upload: an unscoped upload merged into
// the global collection only.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	h.IngestUpload(w, r, "")
}

// IngestUpload runs the shared upload flow: spool the multipart part to
// the upload directory, hand the path to the ingestion coordinator (which
// removes it), report the count. The programs feature calls this with a
// program id for scoped uploads.
func (h *Handler) IngestUpload(w http.ResponseWriter, r *http.Request, programID string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "spreadsheet ingest")
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		apijson.Error(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	path, err := formutil.SaveUpload(file, header.Filename, h.UploadDir)
	if err != nil {
		h.Log.Error("saving upload failed", zap.String("file", header.Filename), zap.Error(err))
		apijson.Error(w, http.StatusInternalServerError, "could not store upload")
		return
	}

	count, err := h.Ingest.Ingest(ctx, path, header.Filename, programID)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedType) {
			apijson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("ingest failed", zap.String("file", header.Filename), zap.Error(err))
		apijson.Error(w, http.StatusInternalServerError, "could not process upload")
		return
	}

	h.Log.Info("spreadsheet ingested",
		zap.String("file", header.Filename),
		zap.String("program", programID),
		zap.Int("added", count))
	apijson.Write(w, http.StatusOK, uploadResponse{Success: true, Count: count})
}
