package entities

import "strconv"

// BasisKind identifies the unit rate a dosing basis is expressed in.
type BasisKind string

const (
	MgPerKgPerDay  BasisKind = "mg_per_kg_per_day"
	MgPerKgPerDose BasisKind = "mg_per_kg_per_dose"
	MgPerM2PerDay  BasisKind = "mg_per_m2_per_day"
	MgPerM2PerDose BasisKind = "mg_per_m2_per_dose"
)

// DosingBasis carries exactly one unit rate. A rule holds one basis per
// dosing unit it defines, instead of four nullable fields on one record.
type DosingBasis struct {
	Kind BasisKind `json:"kind"`
	Rate float64   `json:"rate"`
}

// PerDose reports whether the basis rate is expressed per individual dose
// rather than per day.
func (b DosingBasis) PerDose() bool {
	return b.Kind == MgPerKgPerDose || b.Kind == MgPerM2PerDose
}

// NeedsBSA reports whether the basis is scaled by body surface area.
func (b DosingBasis) NeedsBSA() bool {
	return b.Kind == MgPerM2PerDay || b.Kind == MgPerM2PerDose
}

// Unit returns the display unit for the basis rate.
func (b DosingBasis) Unit() string {
	switch b.Kind {
	case MgPerKgPerDay:
		return "mg/kg/gün"
	case MgPerKgPerDose:
		return "mg/kg/doz"
	case MgPerM2PerDay:
		return "mg/m²/gün"
	case MgPerM2PerDose:
		return "mg/m²/doz"
	}
	return string(b.Kind)
}

// DoseRule describes one dosing regimen for one indication and route.
// Rules are built once at catalog load and never mutated afterwards.
type DoseRule struct {
	Indication   string        `json:"indication"`
	Route        string        `json:"route"`
	Frequency    string        `json:"frequency"`
	Bases        []DosingBasis `json:"bases"`
	MaxMgPerDay  float64       `json:"maxMgPerDay,omitempty"`
	MaxMgPerDose float64       `json:"maxMgPerDose,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

// NeedsBSA reports whether any basis on the rule requires a body surface
// area estimate.
func (r DoseRule) NeedsBSA() bool {
	for _, b := range r.Bases {
		if b.NeedsBSA() {
			return true
		}
	}
	return false
}

// HasBasis reports whether the rule carries at least one dosing basis.
// A rule without one is a data authoring problem: it can be described
// but nothing can be computed from it.
func (r DoseRule) HasBasis() bool {
	return len(r.Bases) > 0
}

// Describe returns the human readable summary line for the rule:
// the basis rates with units, then route and frequency.
func (r DoseRule) Describe() string {
	desc := ""
	for i, b := range r.Bases {
		if i > 0 {
			desc += " / "
		}
		desc += strconv.FormatFloat(b.Rate, 'f', -1, 64) + " " + b.Unit()
	}
	if desc == "" {
		desc = "doz temeli tanımsız"
	}
	return desc + ", " + r.Route + ", " + r.Frequency
}
