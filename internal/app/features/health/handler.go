package health

import (
	"context"
	"net/http"

	"github.com/dohyunmoon/applytrack/internal/app/features/shared/apijson"
	applicantstore "github.com/dohyunmoon/applytrack/internal/app/store/applicants"
	"github.com/dohyunmoon/applytrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Applicants applicantstore.Store
	Log        *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(applicants applicantstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Applicants: applicants,
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	Applicants int    `json:"applicants"`
}

// Serve handles GET /health.
//
// Always 200 with the current global collection size:
//
//	{ "status":"ok", "applicants":128 }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	apijson.Write(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Applicants: h.Applicants.Count(ctx),
	})
}
