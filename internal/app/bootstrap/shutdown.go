// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down resources on exit. The stores are in-memory, so
// there is nothing to disconnect; log the final roster size for the
// operator, since it is about to be lost.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Applicants != nil {
		logger.Info("shutting down", zap.Int("applicants_in_memory", deps.Applicants.Count(ctx)))
	}
	return nil
}
