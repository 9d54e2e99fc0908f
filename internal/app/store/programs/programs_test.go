package programstore

import (
	"testing"

	"github.com/dohyunmoon/applytrack/internal/domain/models"
)

func TestList_ReturnsCopyInOrder(t *testing.T) {
	s := NewWithCatalog([]models.Program{
		{ID: "backend", Name: "백엔드"},
		{ID: "data", Name: "데이터 분석"},
	})

	got := s.List()
	if len(got) != 2 || got[0].ID != "backend" || got[1].ID != "data" {
		t.Fatalf("catalog order wrong: %+v", got)
	}

	// Mutating the returned slice must not touch the catalog.
	got[0].Name = "changed"
	if fresh := s.List(); fresh[0].Name != "백엔드" {
		t.Errorf("List returned shared backing storage")
	}
}

func TestGet(t *testing.T) {
	s := New()

	p, err := s.Get("frontend")
	if err != nil {
		t.Fatalf("Get(frontend): %v", err)
	}
	if p.Name != "프론트엔드" {
		t.Errorf("name: got %q, want 프론트엔드", p.Name)
	}

	if _, err := s.Get("nope"); err != ErrNotFound {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestDefaultCatalogComplete(t *testing.T) {
	s := New()
	if got := len(s.List()); got != 14 {
		t.Errorf("default catalog: got %d programs, want 14", got)
	}
}
