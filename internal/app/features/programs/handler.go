// Package programs serves the program catalog and the program-scoped
// applicant endpoints: roster, stats, scoped uploads and updates.
package programs

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dohyunmoon/applytrack/internal/app/features/applicants"
	"github.com/dohyunmoon/applytrack/internal/app/features/shared/apijson"
	"github.com/dohyunmoon/applytrack/internal/app/features/uploads"
	applicantstore "github.com/dohyunmoon/applytrack/internal/app/store/applicants"
	programstore "github.com/dohyunmoon/applytrack/internal/app/store/programs"
	"github.com/dohyunmoon/applytrack/internal/app/system/timeouts"
)

// Handler holds dependencies for the program endpoints. Scoped uploads
// and updates delegate to the uploads and applicants handlers so the
// flows stay identical to their unscoped counterparts.
type Handler struct {
	Programs   *programstore.Store
	Applicants applicantstore.Store
	Uploads    *uploads.Handler
	Updates    *applicants.Handler
	Log        *zap.Logger
}

// NewHandler constructs a programs Handler.
func NewHandler(programs *programstore.Store, store applicantstore.Store, up *uploads.Handler, upd *applicants.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		Programs:   programs,
		Applicants: store,
		Uploads:    up,
		Updates:    upd,
		Log:        logger,
	}
}

// HandleList handles GET /api/programs: the full catalog in display order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	apijson.Write(w, http.StatusOK, h.Programs.List())
}

// HandleGet handles GET /api/programs/{programID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Programs.Get(chi.URLParam(r, "programID"))
	if err != nil {
		if errors.Is(err, programstore.ErrNotFound) {
			apijson.Error(w, http.StatusNotFound, "program not found")
			return
		}
		h.Log.Error("program lookup failed", zap.Error(err))
		apijson.Error(w, http.StatusInternalServerError, "could not load program")
		return
	}
	apijson.Write(w, http.StatusOK, p)
}

// HandleApplicants handles GET /api/programs/{programID}/applicants.
// An unknown or empty program yields an empty array, not a 404; the
// roster view treats "no applicants yet" and "no such program" the same.
func (h *Handler) HandleApplicants(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list program applicants")
	defer cancel()

	apijson.Write(w, http.StatusOK, h.Applicants.ListByProgram(ctx, chi.URLParam(r, "programID")))
}

// HandleStats handles GET /api/programs/{programID}/stats. Computed
// fresh from the live collection on every request; an unknown program
// gets an all-zero histogram.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "program stats")
	defer cancel()

	apijson.Write(w, http.StatusOK, h.Applicants.StatsByProgram(ctx, chi.URLParam(r, "programID")))
}

// HandleUpload handles POST /api/programs/{programID}/upload: a scoped
// upload merged into the program's collection first, then into the
// global one. Unknown programs are rejected before the file is touched.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	programID := chi.URLParam(r, "programID")
	if _, err := h.Programs.Get(programID); err != nil {
		apijson.Error(w, http.StatusNotFound, "program not found")
		return
	}
	h.Uploads.IngestUpload(w, r, programID)
}

// HandleUpdateApplicant handles PUT /api/programs/{programID}/applicants/{applicantID}:
// a tracking update targeted at the program's collection, mirrored to
// the global copy when one exists.
func (h *Handler) HandleUpdateApplicant(w http.ResponseWriter, r *http.Request) {
	h.Updates.ApplyUpdate(w, r, chi.URLParam(r, "programID"))
}
