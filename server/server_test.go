package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dozhesap/dosing-api/config"
	"github.com/dozhesap/dosing-api/data"
	"github.com/dozhesap/dosing-api/dosing"
	"github.com/dozhesap/dosing-api/logging"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	logging.InitLogger("")

	drugs, nameMap, normalizedMap, err := dosing.ParseCatalog(dosing.DefaultCatalog())
	if err != nil {
		t.Fatalf("failed to parse built-in catalog: %v", err)
	}

	dc := data.NewDataContainer()
	dc.UpdateCatalog(drugs, nameMap, normalizedMap)
	dc.SetServerStartTime(time.Now())

	cfg := &config.Config{
		Port:           "8000",
		Address:        "127.0.0.1",
		Env:            "test",
		MaxRequestBody: 1048576,
		MaxHeaderSize:  1048576,
	}

	return NewServer(cfg, dc)
}

func TestServerRoutes(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/dose/parasetamol?weight=10", http.StatusOK},
		{"/drugs", http.StatusOK},
		{"/drugs/1", http.StatusOK},
		{"/drug/ampisilin", http.StatusOK},
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/yok", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		req.RemoteAddr = "192.0.2.50:1234"
		rec := httptest.NewRecorder()

		srv.Router().ServeHTTP(rec, req)

		if rec.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}

func TestServerDoseEndToEnd(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/dose/seftriakson?weight=20", nil)
	req.RemoteAddr = "192.0.2.51:1234"
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Drug   string `json:"drug"`
		Report string `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Drug != "Seftriakson" {
		t.Errorf("drug = %q", resp.Drug)
	}
	if !strings.Contains(resp.Report, "İLAÇ: Seftriakson") {
		t.Errorf("report missing header:\n%s", resp.Report)
	}
}

func TestServerHealthPayload(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.52:1234"
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Data["drugs"].(float64) == 0 {
		t.Error("health payload missing drug count")
	}
}

func TestServerRateLimitHeaders(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/drugs", nil)
	req.RemoteAddr = "192.0.2.53:1234"
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("rate limit headers not set")
	}
}
