// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	applicantstore "github.com/dohyunmoon/applytrack/internal/app/store/applicants"
	programstore "github.com/dohyunmoon/applytrack/internal/app/store/programs"
)

// ConnectDB builds the store back-ends. There is no external database:
// the applicant collections are in-memory and the program catalog is
// static, so this never fails and never dials anything.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	logger.Info("using in-memory applicant store; records live for the process lifetime")
	return DBDeps{
		Applicants: applicantstore.NewMemory(),
		Programs:   programstore.New(),
	}, nil
}

// EnsureSchema sets up indexes or schema as needed. The in-memory store
// builds its own indexes on construction, so there is nothing to do.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
