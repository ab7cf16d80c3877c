// Package interfaces defines core abstractions for the dosing API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/dozhesap/dosing-api/dosing/entities"
)

// DataQualityReport summarizes catalog authoring problems found at load time.
type DataQualityReport struct {
	DuplicateNames         []string
	DrugsWithoutRules      int
	RulesWithoutBasis      int // Rules that describe but cannot compute anything
	UnparseableFrequencies int // Rules whose frequency code matches no known form
}

// CatalogStore defines the contract for catalog storage. It provides
// read access to an immutable catalog snapshot and atomic replacement of
// the whole snapshot, so readers never need locking.
type CatalogStore interface {
	// Snapshot access
	GetDrugs() []entities.Drug
	GetDrugsMap() map[string]entities.Drug
	GetDrug(query string) (entities.Drug, bool)
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// Snapshot replacement
	UpdateCatalog(drugs []entities.Drug, nameMap, normalizedMap map[string]entities.Drug)
	BeginUpdate() bool
	EndUpdate()
}

// CatalogParser defines the contract for building the catalog from its
// seed: the built-in rule set or an externalized JSON file.
type CatalogParser interface {
	// ParseCatalog loads and validates the catalog. path may be empty,
	// in which case the built-in seed is used.
	ParseCatalog(path string) ([]entities.Drug, map[string]entities.Drug, map[string]entities.Drug, error)
}

// Scheduler defines the contract for catalog loading and health monitoring.
type Scheduler interface {
	Start() error
	Stop()
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	// HealthCheck returns current system health status
	HealthCheck() (status string, data map[string]any, httpStatus int)

	// CalculateNextUpdate returns the next scheduled catalog reload time
	CalculateNextUpdate() time.Time
}

// Validator defines the contract for request input validation and
// catalog data quality checks.
type Validator interface {
	// ValidateDrugQuery validates a user supplied drug name
	ValidateDrugQuery(input string) error

	// ValidateWeight parses and validates a weight in kg
	ValidateWeight(input string) (float64, error)

	// ValidateHeight parses and validates an optional height in cm
	ValidateHeight(input string) (float64, error)

	// ValidateDrug checks if a catalog entry is valid
	ValidateDrug(d *entities.Drug) error

	// ReportDataQuality generates a data quality report for a parsed catalog
	ReportDataQuality(drugs []entities.Drug) *DataQualityReport
}
