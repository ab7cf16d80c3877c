package dosing

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dozhesap/dosing-api/dosing/entities"
	"github.com/dozhesap/dosing-api/logging"
)

// ParseCatalog validates the drug list and builds the two lookup maps:
// exact lower-cased name and diacritic-normalized name. Registration is
// idempotent by name: a later entry with the same name overwrites the
// earlier one, which is logged as a data authoring problem.
func ParseCatalog(drugs []entities.Drug) ([]entities.Drug, map[string]entities.Drug, map[string]entities.Drug, error) {
	if len(drugs) == 0 {
		return nil, nil, nil, fmt.Errorf("catalog is empty")
	}

	parsed := make([]entities.Drug, 0, len(drugs))
	index := make(map[string]int, len(drugs))

	for _, d := range drugs {
		if strings.TrimSpace(d.Name) == "" {
			logging.Warn("Skipping drug with empty name", "rule_count", len(d.Rules))
			continue
		}

		d.NameNormalized = NormalizeText(d.Name)

		key := strings.ToLower(d.Name)
		if i, exists := index[key]; exists {
			logging.Warn("Duplicate drug name, overwriting earlier entry", "name", d.Name)
			parsed[i] = d
			continue
		}

		index[key] = len(parsed)
		parsed = append(parsed, d)
	}

	if len(parsed) == 0 {
		return nil, nil, nil, fmt.Errorf("catalog has no usable entries")
	}

	nameMap := make(map[string]entities.Drug, len(parsed))
	normalizedMap := make(map[string]entities.Drug, len(parsed))
	for _, d := range parsed {
		nameMap[strings.ToLower(d.Name)] = d
		normalizedMap[d.NameNormalized] = d
	}

	return parsed, nameMap, normalizedMap, nil
}

// LoadCatalogFile decodes an externalized catalog from a JSON file.
// The file carries the same records as the built-in seed.
func LoadCatalogFile(path string) ([]entities.Drug, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var drugs []entities.Drug
	if err := json.Unmarshal(raw, &drugs); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	return drugs, nil
}
