// Package validation provides input and catalog validation for the dosing API.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dozhesap/dosing-api/dosing"
	"github.com/dozhesap/dosing-api/dosing/entities"
	"github.com/dozhesap/dosing-api/interfaces"
)

// Plausible clinical input ranges. The HTTP layer is the validation
// boundary: the core itself never checks these.
const (
	MaxWeightKg = 300.0
	MinHeightCm = 20.0
	MaxHeightCm = 250.0
)

// Pre-compiled patterns, compiled once at package initialization
var (
	// Drug query: letters (including Turkish), digits and safe punctuation
	drugQueryRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'çğıöşüÇĞİÖŞÜ]+$`)

	// Dangerous substrings checked before the allowlist regex;
	// strings.Contains is much cheaper than a regex for these
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "onload=", "onerror=",
		"eval(", "expression(", "../", "..\\", "file://",
		"' or ", "\" or ", "union select", "drop table", "--", "/*", "*/",
		"$(", "${", "`",
	}
)

// ValidatorImpl implements the interfaces.Validator interface
type ValidatorImpl struct{}

// NewValidator creates a new validator
func NewValidator() interfaces.Validator {
	return &ValidatorImpl{}
}

// ValidateDrugQuery validates a user supplied drug name
func (v *ValidatorImpl) ValidateDrugQuery(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("drug name is empty")
	}

	if len(input) > 100 {
		return fmt.Errorf("drug name too long: %d characters", len(input))
	}

	lowered := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("drug name contains invalid sequence")
		}
	}

	if !drugQueryRegex.MatchString(input) {
		return fmt.Errorf("drug name contains invalid characters")
	}

	return nil
}

// ValidateWeight parses a weight in kg and checks it is positive and plausible
func (v *ValidatorImpl) ValidateWeight(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, fmt.Errorf("weight is required")
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("weight must be a number: %w", err)
	}

	if weight <= 0 {
		return 0, fmt.Errorf("weight must be positive, got: %v", weight)
	}

	if weight > MaxWeightKg {
		return 0, fmt.Errorf("weight out of plausible range: %v kg", weight)
	}

	return weight, nil
}

// ValidateHeight parses an optional height in cm. An empty input means
// height unknown and returns 0 with no error.
func (v *ValidatorImpl) ValidateHeight(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, nil
	}

	height, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("height must be a number: %w", err)
	}

	if height < MinHeightCm || height > MaxHeightCm {
		return 0, fmt.Errorf("height out of plausible range: %v cm", height)
	}

	return height, nil
}

// ValidateDrug checks if a catalog entry is valid
func (v *ValidatorImpl) ValidateDrug(d *entities.Drug) error {
	if d == nil {
		return fmt.Errorf("drug is nil")
	}

	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("empty drug name")
	}

	if len(d.Name) > 200 {
		return fmt.Errorf("drug name too long for %q: %d characters", d.Name, len(d.Name))
	}

	if len(d.Rules) == 0 {
		return fmt.Errorf("drug %q has no dosing rules", d.Name)
	}

	for i, r := range d.Rules {
		if strings.TrimSpace(r.Indication) == "" {
			return fmt.Errorf("drug %q rule %d has no indication", d.Name, i)
		}
		for _, b := range r.Bases {
			if b.Rate <= 0 {
				return fmt.Errorf("drug %q rule %d has non-positive %s rate: %v", d.Name, i, b.Unit(), b.Rate)
			}
		}
		if r.MaxMgPerDay < 0 || r.MaxMgPerDose < 0 {
			return fmt.Errorf("drug %q rule %d has negative ceiling", d.Name, i)
		}
	}

	return nil
}

// ReportDataQuality generates a data quality report for a parsed catalog.
// None of these findings block serving, they flag authoring problems.
func (v *ValidatorImpl) ReportDataQuality(drugs []entities.Drug) *interfaces.DataQualityReport {
	report := &interfaces.DataQualityReport{}

	seen := make(map[string]bool, len(drugs))
	for _, d := range drugs {
		key := strings.ToLower(d.Name)
		if seen[key] {
			report.DuplicateNames = append(report.DuplicateNames, d.Name)
		}
		seen[key] = true

		if len(d.Rules) == 0 {
			report.DrugsWithoutRules++
		}

		for _, r := range d.Rules {
			if !r.HasBasis() {
				report.RulesWithoutBasis++
			}
			if _, ok := dosing.ParseFrequency(r.Frequency); !ok {
				report.UnparseableFrequencies++
			}
		}
	}

	return report
}
