package uploads_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/dohyunmoon/applytrack/internal/app/features/uploads"
	"github.com/dohyunmoon/applytrack/internal/app/ingest"
	applicantstore "github.com/dohyunmoon/applytrack/internal/app/store/applicants"
	"github.com/dohyunmoon/applytrack/internal/testutil"
)

func newTestHandler(t *testing.T) (*uploads.Handler, *applicantstore.Memory) {
	t.Helper()
	store := applicantstore.NewMemory()
	coordinator := ingest.New(store, zap.NewNop())
	return uploads.NewHandler(coordinator, t.TempDir(), 16<<20, zap.NewNop()), store
}

func TestHandleUpload_CSV(t *testing.T) {
	h, store := newTestHandler(t)

	req := testutil.MultipartUpload(t, "/api/upload", "signup.csv",
		testutil.SignupCSV(testutil.SignupRow("김지민", "01012345678", "kim@example.com", "1999-05-01", "")))
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Count != 1 {
		t.Errorf("got success=%v count=%d, want success=true count=1", resp.Success, resp.Count)
	}
	if got := store.Count(context.Background()); got != 1 {
		t.Errorf("store count: got %d, want 1", got)
	}
}

func TestHandleUpload_NoFile(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/upload", nil)
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected an error message in the body")
	}
}

func TestHandleUpload_UnsupportedType(t *testing.T) {
	h, store := newTestHandler(t)

	req := testutil.MultipartUpload(t, "/api/upload", "notes.txt", "not a spreadsheet")
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := store.Count(context.Background()); got != 0 {
		t.Errorf("store count: got %d, want 0", got)
	}
}

func TestHandleUpload_TempFileRemoved(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.MultipartUpload(t, "/api/upload", "signup.csv",
		testutil.SignupCSV(testutil.SignupRow("김지민", "01012345678", "", "", "")))
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	entries, err := os.ReadDir(h.UploadDir)
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("upload dir not empty after ingest: %d entries", len(entries))
	}
}

func TestHandleUpload_CorruptWorkbookStillSucceeds(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.MultipartUpload(t, "/api/upload", "broken.xlsx", "not a zip archive")
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Count != 0 {
		t.Errorf("got success=%v count=%d, want success=true count=0", resp.Success, resp.Count)
	}
}
