package entities

// Patient holds the anthropometric inputs for one calculation request.
// Patients are ephemeral: built per request, discarded with the report.
type Patient struct {
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm,omitempty"` // 0 means unknown
}

// HasHeight reports whether a usable height was provided.
func (p Patient) HasHeight() bool {
	return p.HeightCm > 0
}
