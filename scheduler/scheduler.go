// Package scheduler provides catalog loading and health monitoring for the
// dosing API. It performs the initial catalog load, reloads an externalized
// catalog file on a daily schedule, and coordinates reloads with the data
// container using dependency injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/dozhesap/dosing-api/interfaces"
	"github.com/dozhesap/dosing-api/logging"
	"github.com/dozhesap/dosing-api/validation"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles catalog loads and health monitoring using dependency injection
type Scheduler struct {
	catalog     interfaces.CatalogStore
	parser      interfaces.CatalogParser
	catalogPath string
	scheduler   *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies.
// catalogPath may be empty, in which case only the built-in seed is used.
func NewScheduler(catalog interfaces.CatalogStore, parser interfaces.CatalogParser, catalogPath string) *Scheduler {
	return &Scheduler{
		catalog:     catalog,
		parser:      parser,
		catalogPath: catalogPath,
		scheduler:   gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial catalog load and schedules daily reloads.
// The initial load is fail-fast: a service without a catalog cannot answer
// anything.
func (s *Scheduler) Start() error {
	if err := s.reloadCatalog(); err != nil {
		logging.Error("Failed to perform initial catalog load", "error", err)
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	// Daily reload at 06:00 picks up edits to the catalog file
	_, err := s.scheduler.Every(1).Days().At("06:00").Do(func() {
		if err := s.reloadCatalog(); err != nil {
			logging.Error("Failed to reload catalog", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule catalog reloads", "error", err)
		return fmt.Errorf("failed to schedule catalog reloads: %w", err)
	}

	s.scheduler.StartAsync()

	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// reloadCatalog builds a fresh catalog snapshot and swaps it in atomically
func (s *Scheduler) reloadCatalog() error {
	// Prevent concurrent reloads
	if !s.catalog.BeginUpdate() {
		logging.Info("Catalog reload already in progress, skipping...")
		return nil
	}
	defer s.catalog.EndUpdate()

	start := time.Now()

	drugs, nameMap, normalizedMap, err := s.parser.ParseCatalog(s.catalogPath)
	if err != nil {
		logging.Error("Failed to parse catalog", "error", err)
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	validator := validation.NewValidator()
	for i := range drugs {
		if err := validator.ValidateDrug(&drugs[i]); err != nil {
			logging.Warn("Catalog entry failed validation", "error", err)
		}
	}

	report := validator.ReportDataQuality(drugs)
	if len(report.DuplicateNames) > 0 {
		logging.Warn("Duplicate drug names detected",
			"total", len(report.DuplicateNames),
			"names", report.DuplicateNames,
		)
	}
	if report.RulesWithoutBasis > 0 {
		logging.Warn("Rules without a dosing basis detected",
			"count", report.RulesWithoutBasis,
		)
	}
	if report.UnparseableFrequencies > 0 {
		logging.Info("Rules with unparseable frequency codes",
			"count", report.UnparseableFrequencies,
		)
	}

	// Atomic swap (zero downtime replacement)
	s.catalog.UpdateCatalog(drugs, nameMap, normalizedMap)

	elapsed := time.Since(start)
	logging.Info("Catalog load completed", "duration", elapsed.String(), "drug_count", len(drugs))

	return nil
}

// startHealthMonitoring watches for a catalog that has stopped reloading
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastUpdate := s.catalog.GetLastUpdated()
			if time.Since(lastUpdate) > 25*time.Hour {
				logging.Warn("Catalog hasn't been reloaded in over 25 hours")
			}
		}
	}()
}
