// Package model defines the core domain models used throughout the application.
package model

// Domain is a closed categorical domain with its remote-schema key prefix.
// The value set is fixed at build time; the encoder emits one key per value
// regardless of which value is selected. A remote schema change is a single
// edit to the matching table below.
type Domain struct {
	Prefix string
	Values []string
}

// Key returns the remote-schema key for a domain member.
func (d Domain) Key(value string) string {
	return d.Prefix + value
}

// Contains reports whether value is a member of the domain.
func (d Domain) Contains(value string) bool {
	for _, v := range d.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Closed domains matching the remote model's training-time encoding.
// These must stay in exact parity with the scoring service; do not derive
// them from live input.
var (
	MerchantGroups = Domain{
		Prefix: "merchant_grouped_",
		Values: []string{"Cormier_LLC", "Kilback_LLC", "Kuhn_LLC", "Schumm_PLC", "Other"},
	}

	Categories = Domain{
		Prefix: "category_",
		Values: []string{
			"food_dining", "gas_transport", "grocery_net", "grocery_pos", "health_fitness",
			"home", "kids_pets", "misc_net", "misc_pos", "personal_care",
			"shopping_net", "shopping_pos", "travel",
		},
	}

	JobGroups = Domain{
		Prefix: "job_grouped_",
		Values: []string{
			"Analyst", "Consultant", "Creative", "Engineer", "Finance", "Healthcare",
			"Legal", "Manager", "Officer", "Other", "Sales", "Scientist", "Teacher",
		},
	}

	Regions = Domain{
		Prefix: "region_",
		Values: []string{"Northeast", "South", "West"},
	}
)

// AllDomains lists every one-hot encoded domain in schema order.
var AllDomains = []Domain{MerchantGroups, Categories, JobGroups, Regions}

// Gender values. Gender is deliberately not a one-hot group: the remote
// schema carries the single boolean key "gender_M".
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
