// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"path/filepath"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applicantsfeature "github.com/dohyunmoon/applytrack/internal/app/features/applicants"
	healthfeature "github.com/dohyunmoon/applytrack/internal/app/features/health"
	programsfeature "github.com/dohyunmoon/applytrack/internal/app/features/programs"
	uploadsfeature "github.com/dohyunmoon/applytrack/internal/app/features/uploads"
	"github.com/dohyunmoon/applytrack/internal/app/ingest"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, store construction, and Startup
// have completed. It creates the chi router, wires the ingestion
// coordinator to the stores, and mounts the feature routers:
//   - /health            liveness and roster size
//   - /api/upload        unscoped spreadsheet uploads
//   - /api/applicants    global roster and tracking updates
//   - /api/programs      catalog, scoped rosters, stats, scoped uploads
//   - /static, /         the upload UI assets
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Applicants, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.PublicDir))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(appCfg.PublicDir, "index.html"))
	})

	coordinator := ingest.New(deps.Applicants, logger)
	uploadsHandler := uploadsfeature.NewHandler(coordinator, appCfg.UploadDir, int64(appCfg.MaxUploadMB)<<20, logger)
	applicantsHandler := applicantsfeature.NewHandler(deps.Applicants, logger)
	programsHandler := programsfeature.NewHandler(deps.Programs, deps.Applicants, uploadsHandler, applicantsHandler, logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/upload", uploadsfeature.Routes(uploadsHandler))
		r.Mount("/applicants", applicantsfeature.Routes(applicantsHandler))
		r.Mount("/programs", programsfeature.Routes(programsHandler))
	})

	return r, nil
}
