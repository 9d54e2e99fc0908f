// Package applicants serves the global applicant collection: the full
// roster listing and per-record tracking updates.
package applicants

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dohyunmoon/applytrack/internal/app/features/shared/apijson"
	applicantstore "github.com/dohyunmoon/applytrack/internal/app/store/applicants"
	"github.com/dohyunmoon/applytrack/internal/app/system/htmlsanitize"
	"github.com/dohyunmoon/applytrack/internal/app/system/timeouts"
	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

// Handler holds dependencies for the applicant endpoints.
type Handler struct {
	Store applicantstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an applicants Handler.
func NewHandler(store applicantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleList handles GET /api/applicants: every record in the global
// collection, insertion order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list applicants")
	defer cancel()

	apijson.Write(w, http.StatusOK, h.Store.ListAll(ctx))
}

// HandleUpdate handles PUT /api/applicants/{id}: a partial tracking
// update applied in the global scope. Fields absent from the body stay
// untouched.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.ApplyUpdate(w, r, "")
}

// ApplyUpdate runs the shared update flow for the scope selected by
// programID (empty means global). The programs feature calls this for
// program-scoped updates.
func (h *Handler) ApplyUpdate(w http.ResponseWriter, r *http.Request, programID string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update applicant")
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "applicantID"), 10, 64)
	if err != nil {
		apijson.Error(w, http.StatusBadRequest, "invalid applicant id")
		return
	}

	var upd models.ApplicantUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		apijson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Free-text fields are stored verbatim and rendered later, so strip
	// markup on the way in.
	if upd.Notes != nil {
		clean := htmlsanitize.Sanitize(*upd.Notes)
		upd.Notes = &clean
	}
	if upd.ConsideringReason != nil {
		clean := htmlsanitize.Sanitize(*upd.ConsideringReason)
		upd.ConsideringReason = &clean
	}

	rec, err := h.Store.Update(ctx, id, programID, upd, time.Now())
	if err != nil {
		if errors.Is(err, applicantstore.ErrNotFound) {
			apijson.Error(w, http.StatusNotFound, "applicant not found")
			return
		}
		h.Log.Error("applicant update failed", zap.Int64("id", id), zap.Error(err))
		apijson.Error(w, http.StatusInternalServerError, "could not update applicant")
		return
	}

	apijson.Write(w, http.StatusOK, rec)
}
