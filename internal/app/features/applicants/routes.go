// internal/app/features/applicants/routes.go
package applicants

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the global applicant endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)                // mounted under /api/applicants
	r.Put("/{applicantID}", h.HandleUpdate) // PUT /api/applicants/{id}
	return r
}
