package dosing

import (
	"github.com/dozhesap/dosing-api/dosing/entities"
	"github.com/dozhesap/dosing-api/interfaces"
	"github.com/dozhesap/dosing-api/logging"
)

// Compile-time check to ensure SeedParser implements CatalogParser
var _ interfaces.CatalogParser = (*SeedParser)(nil)

// SeedParser implements the CatalogParser interface over the built-in
// seed and the optional externalized catalog file.
type SeedParser struct{}

// NewSeedParser creates a new SeedParser instance
func NewSeedParser() *SeedParser {
	return &SeedParser{}
}

// ParseCatalog implements the CatalogParser interface. When path is set
// but unreadable the built-in seed is used, so a broken catalog file
// degrades the deployment instead of taking it down.
func (p *SeedParser) ParseCatalog(path string) ([]entities.Drug, map[string]entities.Drug, map[string]entities.Drug, error) {
	drugs := DefaultCatalog()

	if path != "" {
		loaded, err := LoadCatalogFile(path)
		if err != nil {
			logging.Warn("Falling back to built-in catalog", "path", path, "error", err)
		} else {
			logging.Info("Loaded catalog file", "path", path, "drug_count", len(loaded))
			drugs = loaded
		}
	}

	return ParseCatalog(drugs)
}
