package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dozhesap/dosing-api/data"
	"github.com/dozhesap/dosing-api/dosing"
	"github.com/dozhesap/dosing-api/dosing/entities"
	"github.com/dozhesap/dosing-api/validation"
)

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()

	drugs, nameMap, normalizedMap, err := dosing.ParseCatalog(dosing.DefaultCatalog())
	if err != nil {
		t.Fatalf("failed to parse built-in catalog: %v", err)
	}

	dc := data.NewDataContainer()
	dc.UpdateCatalog(drugs, nameMap, normalizedMap)

	validator := validation.NewValidator()

	r := chi.NewRouter()
	r.Get("/dose/{drug}", ComputeDose(dc, validator))
	r.Get("/drugs", ServeAllDrugs(dc))
	r.Get("/drugs/{pageNumber}", ServePagedDrugs(dc))
	r.Get("/drug/{name}", FindDrug(dc, validator))
	return r
}

func doRequest(t *testing.T, router *chi.Mux, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestComputeDose(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/dose/ampisilin%20sulbaktam?weight=10")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp DoseReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Drug != "Ampisilin Sulbaktam" {
		t.Errorf("Drug = %q", resp.Drug)
	}
	if resp.WeightKg != 10 {
		t.Errorf("WeightKg = %v", resp.WeightKg)
	}
	if !strings.Contains(resp.Report, "İLAÇ: Ampisilin Sulbaktam") {
		t.Errorf("report missing header:\n%s", resp.Report)
	}
	if !strings.Contains(resp.Report, "→ 250 mg/doz") {
		t.Errorf("report missing computed dose:\n%s", resp.Report)
	}
}

func TestComputeDoseWithHeight(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/dose/asiklovir?weight=16&height=100")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp DoseReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.HeightCm != 100 {
		t.Errorf("HeightCm = %v", resp.HeightCm)
	}
	if !strings.Contains(resp.Report, "VYA: 0.67 m² (Mosteller)") {
		t.Errorf("report missing Mosteller BSA line:\n%s", resp.Report)
	}
}

func TestComputeDoseMissingWeight(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/dose/parasetamol")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestComputeDoseInvalidInputs(t *testing.T) {
	router := testRouter(t)

	tests := []string{
		"/dose/parasetamol?weight=abc",
		"/dose/parasetamol?weight=-5",
		"/dose/parasetamol?weight=10&height=5",
		"/dose/%3Cscript%3E?weight=10",
	}
	for _, path := range tests {
		if rec := doRequest(t, router, path); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
	}
}

func TestComputeDoseUnknownDrug(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/dose/bilinmeyen?weight=10")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["message"] != dosing.NotFoundMessage {
		t.Errorf("message = %v, want %q", resp["message"], dosing.NotFoundMessage)
	}
}

func TestServeAllDrugs(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/drugs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var drugs []entities.Drug
	if err := json.Unmarshal(rec.Body.Bytes(), &drugs); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(drugs) == 0 {
		t.Error("expected non-empty drug list")
	}
}

func TestServePagedDrugs(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/drugs/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data       []entities.Drug `json:"data"`
		Page       int             `json:"page"`
		PageSize   int             `json:"pageSize"`
		TotalItems int             `json:"totalItems"`
		MaxPage    int             `json:"maxPage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Page != 1 || resp.PageSize != 10 {
		t.Errorf("page = %d, pageSize = %d", resp.Page, resp.PageSize)
	}
	if len(resp.Data) == 0 || len(resp.Data) > 10 {
		t.Errorf("page holds %d entries", len(resp.Data))
	}
	if resp.TotalItems < len(resp.Data) {
		t.Errorf("totalItems = %d < page size %d", resp.TotalItems, len(resp.Data))
	}
}

func TestServePagedDrugsBadInput(t *testing.T) {
	router := testRouter(t)

	if rec := doRequest(t, router, "/drugs/abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric page: status = %d, want 400", rec.Code)
	}
	if rec := doRequest(t, router, "/drugs/0"); rec.Code != http.StatusBadRequest {
		t.Errorf("page zero: status = %d, want 400", rec.Code)
	}
	if rec := doRequest(t, router, "/drugs/999"); rec.Code != http.StatusNotFound {
		t.Errorf("page past end: status = %d, want 404", rec.Code)
	}
}

func TestFindDrug(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/drug/ampisilin")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var results []entities.Drug
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Ampisilin Sulbaktam" {
		t.Errorf("results = %v", results)
	}
}

func TestFindDrugNoMatch(t *testing.T) {
	router := testRouter(t)

	if rec := doRequest(t, router, "/drug/kayip"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
