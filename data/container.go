// Package data provides thread-safe catalog storage for the dosing API.
// It includes the DataContainer struct with atomic operations for
// zero-downtime catalog reloads and lock-free read access for callers.
package data

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/dozhesap/dosing-api/dosing"
	"github.com/dozhesap/dosing-api/dosing/entities"
	"github.com/dozhesap/dosing-api/interfaces"
	"github.com/dozhesap/dosing-api/logging"
)

// Compile-time check to ensure DataContainer implements CatalogStore
var _ interfaces.CatalogStore = (*DataContainer)(nil)

// DataContainer holds the catalog with atomic pointers for zero-downtime
// reloads. Readers always see a complete, immutable snapshot.
type DataContainer struct {
	drugs           atomic.Value // []entities.Drug
	nameMap         atomic.Value // map[string]entities.Drug, key: lower-cased name
	normalizedMap   atomic.Value // map[string]entities.Drug, key: diacritic-folded name
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewDataContainer creates a new DataContainer with an empty catalog
func NewDataContainer() *DataContainer {
	dc := &DataContainer{}
	dc.drugs.Store(make([]entities.Drug, 0))
	dc.nameMap.Store(make(map[string]entities.Drug))
	dc.normalizedMap.Store(make(map[string]entities.Drug))
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// Thread-safe getters with type check

// GetDrugs returns the catalog drug list
func (dc *DataContainer) GetDrugs() []entities.Drug {
	if v := dc.drugs.Load(); v != nil {
		if drugs, ok := v.([]entities.Drug); ok {
			return drugs
		}
	}

	logging.Warn("Drug list is empty or invalid")
	return []entities.Drug{}
}

// GetDrugsMap returns the lower-cased name map for O(1) lookups
func (dc *DataContainer) GetDrugsMap() map[string]entities.Drug {
	if v := dc.nameMap.Load(); v != nil {
		if nameMap, ok := v.(map[string]entities.Drug); ok {
			return nameMap
		}
	}

	logging.Warn("Drug name map is empty or invalid")
	return make(map[string]entities.Drug)
}

func (dc *DataContainer) getNormalizedMap() map[string]entities.Drug {
	if v := dc.normalizedMap.Load(); v != nil {
		if normalizedMap, ok := v.(map[string]entities.Drug); ok {
			return normalizedMap
		}
	}

	logging.Warn("Normalized drug map is empty or invalid")
	return make(map[string]entities.Drug)
}

// GetDrug looks a drug up by name. The match is a case-insensitive exact
// match first; when that misses, the diacritic-normalized form is tried,
// so "ampisilin sulbaktam" also finds "Ampisilin Sulbaktam" typed with
// Turkish characters.
func (dc *DataContainer) GetDrug(query string) (entities.Drug, bool) {
	if drug, ok := dc.GetDrugsMap()[strings.ToLower(query)]; ok {
		return drug, true
	}

	drug, ok := dc.getNormalizedMap()[dosing.NormalizeText(query)]
	return drug, ok
}

// GetLastUpdated returns the timestamp of the last catalog load
func (dc *DataContainer) GetLastUpdated() time.Time {
	if v := dc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a catalog reload is currently in progress
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateCatalog atomically replaces the catalog snapshot
func (dc *DataContainer) UpdateCatalog(drugs []entities.Drug, nameMap, normalizedMap map[string]entities.Drug) {
	// Atomic swap (zero downtime replacement)
	dc.drugs.Store(drugs)
	dc.nameMap.Store(nameMap)
	dc.normalizedMap.Store(normalizedMap)
	dc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a catalog reload.
// Returns true if the reload can proceed, false if another one is in progress
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a catalog reload
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}
