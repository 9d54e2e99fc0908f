// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	applicantstore "github.com/dohyunmoon/applytrack/internal/app/store/applicants"
	programstore "github.com/dohyunmoon/applytrack/internal/app/store/programs"
)

// DBDeps holds the store back-ends for the app. The applicant store is
// in-memory by contract: records live for the process lifetime only.
type DBDeps struct {
	Applicants *applicantstore.Memory
	Programs   *programstore.Store
}
