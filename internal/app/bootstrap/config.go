// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the applicant tracker.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: upload_dir, public_dir, etc.
//   - Environment variables: APPLYTRACK_UPLOAD_DIR, APPLYTRACK_PUBLIC_DIR, etc.
//   - Command-line flags: --upload_dir, --public_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "upload_dir", Default: "./uploads", Desc: "Directory where uploaded spreadsheets are spooled"},
	{Name: "public_dir", Default: "public", Desc: "Directory of static upload-UI assets"},
	{Name: "max_upload_mb", Default: 16, Desc: "Maximum spreadsheet upload size in megabytes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, APPLYTRACK_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "APPLYTRACK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		UploadDir:   appValues.String("upload_dir"),
		PublicDir:   appValues.String("public_dir"),
		MaxUploadMB: appValues.Int("max_upload_mb"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.UploadDir == "" {
		return fmt.Errorf("upload_dir must not be empty")
	}
	if appCfg.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", appCfg.MaxUploadMB)
	}
	return nil
}
