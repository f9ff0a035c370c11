package testutil

import "github.com/frankasd12/NibbleCheck/internal/catalog"

func ptr(s string) *string { return &s }

// PetFoods is a small catalog shared by integration tests.
func PetFoods() []catalog.Food {
	return []catalog.Food{
		{
			ID:            1,
			CanonicalName: "sugar",
			GroupName:     "sweeteners",
			DefaultStatus: catalog.Safe,
			Synonyms:      []string{"sucrose"},
		},
		{
			ID:            2,
			CanonicalName: "salt",
			GroupName:     "minerals",
			DefaultStatus: catalog.Caution,
			Synonyms:      []string{"sodium chloride"},
		},
		{
			ID:            3,
			CanonicalName: "xylitol",
			GroupName:     "sweeteners",
			DefaultStatus: catalog.Unsafe,
			Notes:         ptr("causes hypoglycemia"),
			Sources:       ptr("ASPCA"),
			Synonyms:      []string{"birch sugar"},
			Rules: []catalog.Rule{
				{ID: 10, RuleType: "any_amount", Status: "UNSAFE", Details: map[string]any{"reason": "insulin release"}},
				{ID: 11, RuleType: "note"},
			},
		},
	}
}
