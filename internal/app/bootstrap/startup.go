// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dohyunmoon/applytrack/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after the stores are
// built, but before the HTTP handler is. It applies any timeout overrides
// from the environment and makes sure the upload spool directory exists.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n))
	}
	if err := os.MkdirAll(appCfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir %q: %w", appCfg.UploadDir, err)
	}
	return nil
}
