package suggest

import "ecotrack/core/types"

// Default returns the embedded fallback rules covering the three
// highest-impact categories. Deployments normally override them with
// a rule file; absence of that file is a degradation, not a failure.
func Default() *RuleTable {
	return NewRuleTable(map[types.Category]Rule{
		types.CategoryTransport: {
			Threshold: 0.3,
			Tips: []Tip{
				{Text: "Switch your commute to public transport", Savings: 45.0, Impact: "high"},
				{Text: "Try carpooling twice a week", Savings: 20.0, Impact: "medium"},
				{Text: "Combine errands into a single trip", Savings: 8.0, Impact: "low"},
			},
		},
		types.CategoryFood: {
			Threshold: 0.25,
			Tips: []Tip{
				{Text: "Replace half of your beef meals with chicken or plant protein", Savings: 35.0, Impact: "high"},
				{Text: "Plan meals ahead to avoid over-buying perishables", Savings: 12.0, Impact: "medium"},
			},
		},
		types.CategoryEnergy: {
			Threshold: 0.4,
			Tips: []Tip{
				{Text: "Switch to a certified green electricity tariff", Savings: 60.0, Impact: "high"},
				{Text: "Raise your AC setpoint by two degrees", Savings: 18.0, Impact: "medium"},
				{Text: "Replace remaining incandescent bulbs with LEDs", Savings: 6.0, Impact: "low"},
			},
		},
	})
}
