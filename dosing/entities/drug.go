package entities

// Drug is a catalog entry: a named drug plus its ordered dosing rules.
// Multiple rules may share an indication (dosing bands); the order of Rules
// is the registration order and must be preserved in reports.
type Drug struct {
	Name           string     `json:"name"`
	NameNormalized string     `json:"-"` // Pre-computed: lower-cased, diacritics folded
	Rules          []DoseRule `json:"rules"`
}

// IndicationGroup is the rules of one indication, in registration order.
type IndicationGroup struct {
	Indication string
	Rules      []DoseRule
}

// RulesByIndication groups the drug's rules by indication, preserving the
// first-seen order of indications and the registration order inside each group.
func (d Drug) RulesByIndication() []IndicationGroup {
	index := make(map[string]int)
	groups := make([]IndicationGroup, 0, len(d.Rules))

	for _, r := range d.Rules {
		i, seen := index[r.Indication]
		if !seen {
			index[r.Indication] = len(groups)
			groups = append(groups, IndicationGroup{Indication: r.Indication})
			i = len(groups) - 1
		}
		groups[i].Rules = append(groups[i].Rules, r)
	}

	return groups
}
