// Package handlers provides HTTP request handlers for the dosing API
// endpoints: dose report computation, catalog listing and search, and
// health checks, with input validation at the request boundary.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dozhesap/dosing-api/data"
	"github.com/dozhesap/dosing-api/dosing"
	"github.com/dozhesap/dosing-api/dosing/entities"
	"github.com/dozhesap/dosing-api/interfaces"
	"github.com/dozhesap/dosing-api/logging"
	"github.com/dozhesap/dosing-api/metrics"
)

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(body)
}

// RespondWithError writes a JSON error response
func RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	RespondWithJSON(w, code, errorResponse)
}

// DoseReportResponse is the payload of the dose computation endpoint
type DoseReportResponse struct {
	Drug     string  `json:"drug"`
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm,omitempty"`
	Report   string  `json:"report"`
}

// ComputeDose computes the dose report for one drug and one patient.
// Weight is required, height optional; both are validated here because the
// core treats the caller as the validation boundary.
func ComputeDose(dc *data.DataContainer, validator interfaces.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := chi.URLParam(r, "drug")
		if err := validator.ValidateDrugQuery(query); err != nil {
			logging.Warn("Unusual user input", "drug", query)
			metrics.DoseComputationsTotal.WithLabelValues("invalid_input").Inc()
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		weight, err := validator.ValidateWeight(r.URL.Query().Get("weight"))
		if err != nil {
			metrics.DoseComputationsTotal.WithLabelValues("invalid_input").Inc()
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		height, err := validator.ValidateHeight(r.URL.Query().Get("height"))
		if err != nil {
			metrics.DoseComputationsTotal.WithLabelValues("invalid_input").Inc()
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		drug, exists := dc.GetDrug(query)
		if !exists {
			metrics.DoseComputationsTotal.WithLabelValues("not_found").Inc()
			RespondWithError(w, http.StatusNotFound, dosing.NotFoundMessage)
			return
		}

		patient := entities.Patient{WeightKg: weight, HeightCm: height}
		report := dosing.BuildReport(dc, patient, query)

		metrics.DoseComputationsTotal.WithLabelValues("ok").Inc()
		RespondWithJSON(w, http.StatusOK, DoseReportResponse{
			Drug:     drug.Name,
			WeightKg: weight,
			HeightCm: height,
			Report:   report,
		})
	}
}

// ServeAllDrugs returns the whole catalog
func ServeAllDrugs(dc *data.DataContainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, dc.GetDrugs())
	}
}

// ServePagedDrugs returns the catalog one page at a time
func ServePagedDrugs(dc *data.DataContainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNumber := chi.URLParam(r, "pageNumber")
		page, err := strconv.Atoi(pageNumber)
		if err != nil || page < 1 {
			logging.Warn("Unusual user input", "pageNumber", pageNumber)
			RespondWithError(w, http.StatusBadRequest, "Invalid page number")
			return
		}

		drugs := dc.GetDrugs()
		pageSize := 10
		start := (page - 1) * pageSize
		end := start + pageSize

		if start >= len(drugs) {
			RespondWithError(w, http.StatusNotFound, "Page not found")
			return
		}

		if end > len(drugs) {
			end = len(drugs)
		}

		totalItems := len(drugs)
		maxPage := (totalItems + pageSize - 1) / pageSize

		response := map[string]interface{}{
			"data":       drugs[start:end],
			"page":       page,
			"pageSize":   pageSize,
			"totalItems": totalItems,
			"maxPage":    maxPage,
		}

		RespondWithJSON(w, http.StatusOK, response)
	}
}

// FindDrug searches the catalog by name, diacritic and case insensitive
func FindDrug(dc *data.DataContainer, validator interfaces.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := validator.ValidateDrugQuery(name); err != nil {
			logging.Warn("Unusual user input", "name", name)
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		normalized := dosing.NormalizeText(name)

		var results []entities.Drug
		for _, d := range dc.GetDrugs() {
			if strings.Contains(d.NameNormalized, normalized) {
				results = append(results, d)
			}
		}

		if len(results) == 0 {
			RespondWithError(w, http.StatusNotFound, dosing.NotFoundMessage)
			return
		}

		RespondWithJSON(w, http.StatusOK, results)
	}
}

// HealthCheck returns server health information
func HealthCheck(hc interfaces.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, details, httpStatus := hc.HealthCheck()

		response := map[string]interface{}{
			"status": status,
			"data":   details,
		}

		RespondWithJSON(w, httpStatus, response)
	}
}
