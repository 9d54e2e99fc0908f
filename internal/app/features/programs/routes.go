// internal/app/features/programs/routes.go
package programs

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the program endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList) // mounted under /api/programs
	r.Route("/{programID}", func(r chi.Router) {
		r.Get("/", h.HandleGet)
		r.Get("/applicants", h.HandleApplicants)
		r.Get("/stats", h.HandleStats)
		r.Post("/upload", h.HandleUpload)
		r.Put("/applicants/{applicantID}", h.HandleUpdateApplicant)
	})
	return r
}
