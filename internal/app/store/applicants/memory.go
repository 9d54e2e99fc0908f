// internal/app/store/applicants/memory.go
package applicantstore

import (
	"context"
	"sync"
	"time"

	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

// Memory is the reference Store implementation: plain slices guarded by
// one RWMutex, with a phone set per collection so the uniqueness check is
// O(1) instead of a rescan per candidate.
//
// A single lock covers every collection, which makes each append and the
// update-in-both-scopes path atomic. Records live only for the process
// lifetime.
type Memory struct {
	mu sync.RWMutex

	global       []models.ApplicantRecord
	globalPhones map[string]struct{}

	byProgram     map[string][]models.ApplicantRecord
	programPhones map[string]map[string]struct{}
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		globalPhones:  map[string]struct{}{},
		byProgram:     map[string][]models.ApplicantRecord{},
		programPhones: map[string]map[string]struct{}{},
	}
}

var _ Store = (*Memory)(nil)

func (m *Memory) ListAll(_ context.Context) []models.ApplicantRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.ApplicantRecord, len(m.global))
	copy(out, m.global)
	return out
}

func (m *Memory) ListByProgram(_ context.Context, programID string) []models.ApplicantRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.byProgram[programID]
	out := make([]models.ApplicantRecord, len(list))
	copy(out, list)
	return out
}

func (m *Memory) AppendGlobal(_ context.Context, recs []models.ApplicantRecord) []models.ApplicantRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var added []models.ApplicantRecord
	for _, rec := range recs {
		if _, dup := m.globalPhones[rec.Phone]; dup {
			continue
		}
		m.global = append(m.global, rec)
		m.globalPhones[rec.Phone] = struct{}{}
		added = append(added, rec)
	}
	return added
}

func (m *Memory) AppendToProgram(_ context.Context, programID string, recs []models.ApplicantRecord) []models.ApplicantRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	phones := m.programPhones[programID]
	if phones == nil {
		phones = map[string]struct{}{}
		m.programPhones[programID] = phones
	}

	var added []models.ApplicantRecord
	for _, rec := range recs {
		if _, dup := phones[rec.Phone]; dup {
			continue
		}
		m.byProgram[programID] = append(m.byProgram[programID], rec)
		phones[rec.Phone] = struct{}{}
		added = append(added, rec)
	}
	return added
}

func (m *Memory) Update(_ context.Context, id int64, programID string, upd models.ApplicantUpdate, now time.Time) (models.ApplicantRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if programID == "" {
		i := indexByID(m.global, id)
		if i < 0 {
			return models.ApplicantRecord{}, ErrNotFound
		}
		m.patchGlobal(i, upd, now)

		// Patch the program copy too, if this record is program-scoped.
		if pid := m.global[i].ProgramID; pid != "" {
			if j := indexByID(m.byProgram[pid], id); j >= 0 {
				m.patchProgram(pid, j, upd, now)
			}
		}
		return m.global[i], nil
	}

	list := m.byProgram[programID]
	i := indexByID(list, id)
	if i < 0 {
		return models.ApplicantRecord{}, ErrNotFound
	}
	m.patchProgram(programID, i, upd, now)

	if j := indexByID(m.global, id); j >= 0 {
		m.patchGlobal(j, upd, now)
	}
	return m.byProgram[programID][i], nil
}

// patchGlobal applies upd to the i-th global record, keeping the phone
// index in step when the phone itself is edited.
func (m *Memory) patchGlobal(i int, upd models.ApplicantUpdate, now time.Time) {
	old := m.global[i].Phone
	applyUpdate(&m.global[i], upd, now)
	if m.global[i].Phone != old {
		delete(m.globalPhones, old)
		m.globalPhones[m.global[i].Phone] = struct{}{}
	}
}

func (m *Memory) patchProgram(programID string, i int, upd models.ApplicantUpdate, now time.Time) {
	list := m.byProgram[programID]
	old := list[i].Phone
	applyUpdate(&list[i], upd, now)
	if phones := m.programPhones[programID]; phones != nil && list[i].Phone != old {
		delete(phones, old)
		phones[list[i].Phone] = struct{}{}
	}
}

func (m *Memory) StatsByProgram(_ context.Context, programID string) models.ProgramStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.byProgram[programID]
	stats := models.ProgramStats{
		Total:              len(list),
		StatusCount:        map[models.Status]int{},
		ConsideringReasons: map[string]int{},
	}
	for _, s := range models.AllStatuses {
		stats.StatusCount[s] = 0
	}
	for _, rec := range list {
		stats.StatusCount[rec.Status]++
		if rec.Status == models.StatusConsidering && rec.ConsideringReason != nil && *rec.ConsideringReason != "" {
			stats.ConsideringReasons[*rec.ConsideringReason]++
		}
	}
	return stats
}

func (m *Memory) Count(_ context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.global)
}

func indexByID(list []models.ApplicantRecord, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// applyUpdate merges non-nil fields from upd into rec and refreshes
// UpdatedAt. ConsideringReason is set whenever present, including to the
// empty string — it is never cleared implicitly on a status change.
func applyUpdate(rec *models.ApplicantRecord, upd models.ApplicantUpdate, now time.Time) {
	if upd.Name != nil {
		rec.Name = *upd.Name
	}
	if upd.Gender != nil {
		rec.Gender = *upd.Gender
	}
	if upd.Age != nil {
		rec.Age = *upd.Age
	}
	if upd.Phone != nil {
		rec.Phone = *upd.Phone
	}
	if upd.Email != nil {
		rec.Email = *upd.Email
	}
	if upd.Status != nil {
		rec.Status = *upd.Status
	}
	if upd.ConsideringReason != nil {
		rec.ConsideringReason = upd.ConsideringReason
	}
	if upd.LastContactDate != nil {
		rec.LastContactDate = *upd.LastContactDate
	}
	if upd.Notes != nil {
		rec.Notes = *upd.Notes
	}
	rec.UpdatedAt = now
}
