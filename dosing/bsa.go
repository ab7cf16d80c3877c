package dosing

import "math"

// MostellerBSA computes body surface area in m² from weight and height
// using the Mosteller formula: sqrt((height_cm * weight_kg) / 3600).
// Preferred whenever height is known.
func MostellerBSA(weightKg, heightCm float64) float64 {
	return math.Sqrt((heightCm * weightKg) / 3600.0)
}

// WeightOnlyBSA estimates body surface area in m² from weight alone:
// ((weight_kg * 4) + 7) / (weight_kg + 90).
// This is an approximation, valid chiefly for pediatric weight ranges, and
// is only a fallback when height is unavailable. It is never a substitute
// for MostellerBSA when height is known.
func WeightOnlyBSA(weightKg float64) float64 {
	return ((weightKg * 4) + 7) / (weightKg + 90)
}
