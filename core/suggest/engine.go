// Package suggest implements the threshold-driven suggestion engine.
// A category whose share of the total footprint exceeds its rule
// threshold yields that rule's highest priority tip. Suggestion
// generation is pure over (breakdown, rule table).
package suggest

import (
	"ecotrack/core/types"
)

// MaxSuggestions caps the result size
const MaxSuggestions = 5

// Tip is one reduction recommendation, ordered highest priority first
// within its rule
type Tip struct {
	// Text is the recommendation shown to the user
	Text string `json:"tip"`

	// Savings is the estimated kgCO2e saved per month
	Savings float64 `json:"savings"`

	// Impact is a coarse impact level (high, medium, low)
	Impact string `json:"impact_level"`
}

// Rule gates a category's tips behind an emission share threshold
type Rule struct {
	// Threshold is the breakdown share in (0,1] above which the
	// category's first tip is selected; comparison is strictly-greater
	Threshold float64 `json:"threshold"`

	// Tips are ordered highest priority first
	Tips []Tip `json:"tips"`
}

// RuleTable is an immutable category→rule mapping, loaded once at
// startup
type RuleTable struct {
	rules map[types.Category]Rule
}

// NewRuleTable creates a rule table from a category mapping
func NewRuleTable(rules map[types.Category]Rule) *RuleTable {
	copied := make(map[types.Category]Rule, len(rules))
	for cat, r := range rules {
		tips := make([]Tip, len(r.Tips))
		copy(tips, r.Tips)
		copied[cat] = Rule{Threshold: r.Threshold, Tips: tips}
	}
	return &RuleTable{rules: copied}
}

// Rule returns the rule for a category
func (t *RuleTable) Rule(category types.Category) (Rule, bool) {
	r, ok := t.rules[category]
	return r, ok
}

// Len returns the number of configured categories
func (t *RuleTable) Len() int {
	return len(t.rules)
}

// Suggestion is one selected tip
type Suggestion struct {
	// Category is the emission category the tip targets
	Category types.Category `json:"category"`

	// Tip is the recommendation text
	Tip string `json:"tip"`

	// Savings is the tip's estimated kgCO2e saved per month
	Savings float64 `json:"savings"`

	// Impact is the tip's impact level
	Impact string `json:"impact_level"`
}

// Result is the suggestion engine output
type Result struct {
	// Suggestions follow the declared category order, not ratio or
	// savings magnitude
	Suggestions []Suggestion `json:"suggestions"`

	// TotalPotentialSavings is the sum of selected tip savings,
	// rounded to 2 decimals
	TotalPotentialSavings float64 `json:"total_potential_savings"`
}

// Suggest selects tips for categories whose emission share exceeds
// their threshold. A zero total returns an empty result, which also
// guards the share division.
func Suggest(breakdown types.Breakdown, rules *RuleTable) *Result {
	result := &Result{Suggestions: []Suggestion{}}

	total := breakdown.Total()
	if total == 0 {
		return result
	}

	var savings float64
	for _, cat := range types.CategoryOrder {
		if len(result.Suggestions) >= MaxSuggestions {
			break
		}
		value, ok := breakdown[cat]
		if !ok || value <= 0 {
			continue
		}
		rule, ok := rules.Rule(cat)
		if !ok || len(rule.Tips) == 0 {
			continue
		}
		if value/total <= rule.Threshold {
			continue
		}

		tip := rule.Tips[0]
		result.Suggestions = append(result.Suggestions, Suggestion{
			Category: cat,
			Tip:      tip.Text,
			Savings:  tip.Savings,
			Impact:   tip.Impact,
		})
		savings += tip.Savings
	}

	result.TotalPotentialSavings = types.Round2(savings)
	return result
}
