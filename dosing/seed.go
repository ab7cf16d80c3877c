package dosing

import "github.com/dozhesap/dosing-api/dosing/entities"

// DefaultCatalog returns the built-in dose rule seed. It is used when no
// external catalog file is configured and as the fallback when the
// configured file cannot be loaded.
func DefaultCatalog() []entities.Drug {
	return []entities.Drug{
		{
			Name: "Ampisilin Sulbaktam",
			Rules: []entities.DoseRule{
				// Two dosing bands under one indication, both must render
				{
					Indication: "genel",
					Route:      "IV",
					Frequency:  "q6h",
					Bases:      []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 100}},
				},
				{
					Indication: "genel",
					Route:      "IV",
					Frequency:  "q6h",
					Bases:      []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 200}},
				},
				{
					Indication:  "menenjit",
					Route:       "IV",
					Frequency:   "q6h",
					Bases:       []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 300}},
					MaxMgPerDay: 12000,
				},
			},
		},
		{
			Name: "Amoksisilin",
			Rules: []entities.DoseRule{
				{
					Indication:  "genel",
					Route:       "PO",
					Frequency:   "günde 3",
					Bases:       []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 50}},
					MaxMgPerDay: 3000,
				},
				{
					Indication:  "akut otitis media",
					Route:       "PO",
					Frequency:   "q12h",
					Bases:       []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 90}},
					MaxMgPerDay: 4000,
				},
			},
		},
		{
			Name: "Parasetamol",
			Rules: []entities.DoseRule{
				{
					Indication:   "genel",
					Route:        "PO",
					Frequency:    "q6h",
					Bases:        []entities.DosingBasis{{Kind: entities.MgPerKgPerDose, Rate: 15}},
					MaxMgPerDose: 1000,
					MaxMgPerDay:  4000,
				},
			},
		},
		{
			Name: "Seftriakson",
			Rules: []entities.DoseRule{
				{
					Indication:  "genel",
					Route:       "IV",
					Frequency:   "od",
					Bases:       []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 50}},
					MaxMgPerDay: 2000,
				},
				{
					Indication:  "menenjit",
					Route:       "IV",
					Frequency:   "q12h",
					Bases:       []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 100}},
					MaxMgPerDay: 4000,
				},
			},
		},
		{
			Name: "Asiklovir",
			Rules: []entities.DoseRule{
				{
					Indication: "herpes ensefaliti",
					Route:      "IV",
					Frequency:  "q8h",
					Bases:      []entities.DosingBasis{{Kind: entities.MgPerM2PerDay, Rate: 1500}},
					Notes:      "3 ay - 12 yaş arası vücut yüzey alanına göre",
				},
			},
		},
		{
			Name: "Vinkristin",
			Rules: []entities.DoseRule{
				{
					Indication:   "onkoloji",
					Route:        "IV",
					Frequency:    "haftada 1",
					Bases:        []entities.DosingBasis{{Kind: entities.MgPerM2PerDose, Rate: 1.5}},
					MaxMgPerDose: 2,
					Notes:        "tek doz 2 mg'ı aşmamalı",
				},
			},
		},
		{
			Name: "İbuprofen",
			Rules: []entities.DoseRule{
				{
					Indication:  "genel",
					Route:       "PO",
					Frequency:   "gerektiğinde",
					Bases:       []entities.DosingBasis{{Kind: entities.MgPerKgPerDay, Rate: 30}},
					MaxMgPerDay: 2400,
				},
			},
		},
	}
}
