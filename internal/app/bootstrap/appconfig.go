// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to the applicant tracker lives.
type AppConfig struct {
	// UploadDir is where uploaded spreadsheets are spooled before the
	// ingestion pipeline parses and removes them.
	UploadDir string

	// PublicDir holds the static upload-UI assets served at / and /static.
	PublicDir string

	// MaxUploadMB caps the size of a single spreadsheet upload.
	MaxUploadMB int
}
