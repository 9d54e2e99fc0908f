// internal/app/store/programs/programs.go

// Package programstore holds the static bootcamp program catalog.
// Programs are read-only reference data; ingestion and updates never
// touch them.
package programstore

import (
	"errors"

	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

// ErrNotFound is returned when a program id is not in the catalog.
var ErrNotFound = errors.New("program not found")

// defaultCatalog is the current recruiting lineup. Order matters: the
// list endpoint returns it as-is and the UI renders it in this order.
var defaultCatalog = []models.Program{
	{ID: "frontend", Name: "프론트엔드"},
	{ID: "backend", Name: "백엔드"},
	{ID: "ios", Name: "iOS 개발"},
	{ID: "android", Name: "Android 개발"},
	{ID: "data", Name: "데이터 분석"},
	{ID: "uxui", Name: "UX/UI 디자인"},
	{ID: "startup", Name: "스타트업 스테이션"},
	{ID: "shortterm", Name: "단기 심화"},
	{ID: "ai-service", Name: "AI 웹 서비스 개발"},
	{ID: "game", Name: "유니티 게임 개발"},
	{ID: "cloud", Name: "클라우드 엔지니어링"},
	{ID: "ai", Name: "AI"},
	{ID: "blockchain", Name: "블록체인"},
	{ID: "growth", Name: "그로스 마케팅"},
}

// Store serves the program catalog.
type Store struct {
	programs []models.Program
	byID     map[string]models.Program
}

// New returns a Store backed by the default catalog.
func New() *Store {
	return NewWithCatalog(defaultCatalog)
}

// NewWithCatalog returns a Store backed by the given catalog.
// Used by tests that need a small fixed lineup.
func NewWithCatalog(catalog []models.Program) *Store {
	byID := make(map[string]models.Program, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	return &Store{programs: catalog, byID: byID}
}

// List returns all programs in catalog order.
func (s *Store) List() []models.Program {
	out := make([]models.Program, len(s.programs))
	copy(out, s.programs)
	return out
}

// Get returns the program with the given id, or ErrNotFound.
func (s *Store) Get(id string) (models.Program, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Program{}, ErrNotFound
	}
	return p, nil
}
