package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dohyunmoon/applytrack/internal/testutil"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	appCfg := AppConfig{
		UploadDir:   t.TempDir(),
		PublicDir:   t.TempDir(),
		MaxUploadMB: 16,
	}
	deps, err := ConnectDB(context.Background(), &config.CoreConfig{}, appCfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	h, err := BuildHandler(&config.CoreConfig{}, appCfg, deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	return h
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"valid", AppConfig{UploadDir: "./uploads", PublicDir: "public", MaxUploadMB: 16}, false},
		{"empty upload dir", AppConfig{UploadDir: "", MaxUploadMB: 16}, true},
		{"zero max upload", AppConfig{UploadDir: "./uploads", MaxUploadMB: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(&config.CoreConfig{}, tt.cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildHandler_RoutesWired(t *testing.T) {
	h := testHandler(t)

	// Health reports an empty roster.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want %d", rec.Code, http.StatusOK)
	}

	// The program catalog is loaded.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/programs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/programs: got %d, want %d", rec.Code, http.StatusOK)
	}
	var programs []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&programs); err != nil {
		t.Fatalf("decode programs: %v", err)
	}
	if len(programs) == 0 {
		t.Error("program catalog is empty")
	}

	// Unknown program is a 404 from the programs feature.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/programs/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /api/programs/nope: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBuildHandler_UploadToRoster(t *testing.T) {
	h := testHandler(t)

	req := testutil.MultipartUpload(t, "/api/upload", "signup.csv",
		testutil.SignupCSV(testutil.SignupRow("김지민", "01012345678", "kim@example.com", "1999-05-01", "")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/upload: got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/applicants", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/applicants: got %d", rec.Code)
	}
	var roster []struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&roster); err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "김지민" || roster[0].Phone != "010-1234-5678" {
		t.Errorf("roster after upload: %+v", roster)
	}
}
