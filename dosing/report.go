package dosing

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dozhesap/dosing-api/dosing/entities"
)

// NotFoundMessage is the fixed reply for a drug that is not in the catalog.
// A miss is a normal, displayable outcome, not an error.
const NotFoundMessage = "İlaç bulunamadı."

// DrugFinder is the part of the catalog store the report builder needs.
type DrugFinder interface {
	GetDrug(query string) (entities.Drug, bool)
}

// Indication headers are upper-cased with Turkish casing rules so that
// "menenjit" renders as "MENENJİT", not "MENENJIT".
var turkishUpper = cases.Upper(language.Turkish)

// BuildReport looks the drug up, applies every rule to the patient and
// returns the multi-line report text. Rules are grouped by indication in
// first-seen order; inside a group the registration order is kept, so a
// drug with two dosing bands under one indication renders both.
//
// The function is pure given the catalog contents: identical inputs yield
// byte-identical text.
func BuildReport(catalog DrugFinder, pt entities.Patient, drugQuery string) string {
	drug, ok := catalog.GetDrug(drugQuery)
	if !ok {
		return NotFoundMessage
	}

	var lines []string
	lines = append(lines, "İLAÇ: "+drug.Name)
	lines = append(lines, "Kilo: "+strconv.FormatFloat(pt.WeightKg, 'f', -1, 64)+" kg")
	if pt.HasHeight() {
		lines = append(lines, "Boy: "+strconv.FormatFloat(pt.HeightCm, 'f', -1, 64)+" cm")
	}

	for _, group := range drug.RulesByIndication() {
		lines = append(lines, "", turkishUpper.String(group.Indication)+":")
		for _, r := range group.Rules {
			lines = append(lines, "  "+r.Describe())
			for _, x := range CalculateRule(r, pt) {
				lines = append(lines, "   "+x)
			}
			if r.Notes != "" {
				lines = append(lines, "   not: "+r.Notes)
			}
		}
	}

	return strings.Join(lines, "\n")
}
