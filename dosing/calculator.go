package dosing

import (
	"fmt"

	"github.com/dozhesap/dosing-api/dosing/entities"
)

// CalculateRule applies one dosing rule to a patient and returns the
// formatted result lines: one per-dose and one per-day figure for every
// dosing basis on the rule.
//
// Safety ceilings are applied as clamp-and-flag: a figure above the rule's
// MaxMgPerDay or MaxMgPerDose is replaced by the ceiling and the line says
// so. An unparseable frequency is surfaced as an explicit state: the side
// of the pair that cannot be derived is omitted and a note line is emitted,
// the day total is never silently reused as a single dose.
func CalculateRule(r entities.DoseRule, pt entities.Patient) []string {
	if !r.HasBasis() {
		return []string{"→ doz temeli tanımsız, hesaplama yapılamadı"}
	}

	var out []string

	dpd, freqKnown := ParseFrequency(r.Frequency)

	if r.NeedsBSA() {
		if pt.HasHeight() {
			out = append(out, fmt.Sprintf("→ VYA: %.2f m² (Mosteller)", MostellerBSA(pt.WeightKg, pt.HeightCm)))
		} else {
			out = append(out, fmt.Sprintf("→ VYA: %.2f m² (tahmini, boy bilinmiyor)", WeightOnlyBSA(pt.WeightKg)))
		}
	}

	for _, b := range r.Bases {
		scale := pt.WeightKg
		if b.NeedsBSA() {
			if pt.HasHeight() {
				scale = MostellerBSA(pt.WeightKg, pt.HeightCm)
			} else {
				scale = WeightOnlyBSA(pt.WeightKg)
			}
		}

		if b.PerDose() {
			mgDose, doseClamped := clamp(b.Rate*scale, r.MaxMgPerDose)
			out = append(out, doseLine(mgDose, doseClamped))
			if freqKnown {
				mgDay, dayClamped := clamp(mgDose*dpd, r.MaxMgPerDay)
				out = append(out, dayLine(mgDay, dayClamped))
			}
			continue
		}

		mgDay, dayClamped := clamp(b.Rate*scale, r.MaxMgPerDay)
		if freqKnown {
			mgDose, doseClamped := clamp(mgDay/dpd, r.MaxMgPerDose)
			out = append(out, doseLine(mgDose, doseClamped))
		}
		out = append(out, dayLine(mgDay, dayClamped))
	}

	if !freqKnown {
		out = append(out, fmt.Sprintf("→ doz sıklığı çözümlenemedi (%s), doz/gün ayrımı yapılmadı", r.Frequency))
	}

	return out
}

// clamp caps value at max when a ceiling is set. max == 0 means no ceiling.
func clamp(value, max float64) (float64, bool) {
	if max > 0 && value > max {
		return max, true
	}
	return value, false
}

func doseLine(mg float64, clamped bool) string {
	if clamped {
		return fmt.Sprintf("→ %.0f mg/doz (maks sınırı uygulandı)", mg)
	}
	return fmt.Sprintf("→ %.0f mg/doz", mg)
}

func dayLine(mg float64, clamped bool) string {
	if clamped {
		return fmt.Sprintf("→ %.0f mg/gün (maks sınırı uygulandı)", mg)
	}
	return fmt.Sprintf("→ %.0f mg/gün", mg)
}
