package suggest

import (
	"math"
	"testing"

	"ecotrack/core/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSuggestEmptyOnZeroTotal(t *testing.T) {
	tests := []struct {
		name      string
		breakdown types.Breakdown
	}{
		{"empty breakdown", types.Breakdown{}},
		{"nil breakdown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Suggest(tt.breakdown, Default())
			if len(result.Suggestions) != 0 {
				t.Errorf("expected no suggestions, got %v", result.Suggestions)
			}
			if result.TotalPotentialSavings != 0 {
				t.Errorf("expected zero savings, got %v", result.TotalPotentialSavings)
			}
		})
	}
}

func TestSuggestSelectsFirstTipAboveThreshold(t *testing.T) {
	// transport share 0.5 > 0.3, food share 0.3 > 0.25,
	// energy share 0.2 < 0.4
	breakdown := types.Breakdown{
		types.CategoryTransport: 50,
		types.CategoryFood:      30,
		types.CategoryEnergy:    20,
	}

	result := Suggest(breakdown, Default())

	if len(result.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(result.Suggestions))
	}
	if result.Suggestions[0].Category != types.CategoryTransport {
		t.Errorf("expected transport first, got %s", result.Suggestions[0].Category)
	}
	if result.Suggestions[1].Category != types.CategoryFood {
		t.Errorf("expected food second, got %s", result.Suggestions[1].Category)
	}

	// First tip in each rule is the highest priority one
	if result.Suggestions[0].Tip != "Switch your commute to public transport" {
		t.Errorf("unexpected transport tip: %s", result.Suggestions[0].Tip)
	}

	expected := 45.0 + 35.0
	if !almostEqual(result.TotalPotentialSavings, expected) {
		t.Errorf("expected savings %v, got %v", expected, result.TotalPotentialSavings)
	}
}

func TestSuggestThresholdIsExclusive(t *testing.T) {
	// energy share is exactly 0.4, equal to its threshold
	breakdown := types.Breakdown{
		types.CategoryEnergy: 40,
		types.CategoryWaste:  60,
	}

	result := Suggest(breakdown, Default())

	for _, s := range result.Suggestions {
		if s.Category == types.CategoryEnergy {
			t.Error("energy at exactly its threshold must not be selected")
		}
	}
}

func TestSuggestSkipsNonPositiveCategories(t *testing.T) {
	// Negative waste must never be suggested against, and it shrinks
	// the total the shares are computed from.
	breakdown := types.Breakdown{
		types.CategoryWaste:  -10,
		types.CategoryEnergy: 20,
	}
	rules := NewRuleTable(map[types.Category]Rule{
		types.CategoryWaste:  {Threshold: 0.01, Tips: []Tip{{Text: "waste tip", Savings: 1}}},
		types.CategoryEnergy: {Threshold: 0.5, Tips: []Tip{{Text: "energy tip", Savings: 2}}},
	})

	result := Suggest(breakdown, rules)

	if len(result.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %v", result.Suggestions)
	}
	if result.Suggestions[0].Category != types.CategoryEnergy {
		t.Errorf("expected energy suggestion, got %s", result.Suggestions[0].Category)
	}
}

func TestSuggestFollowsCategoryOrder(t *testing.T) {
	breakdown := types.Breakdown{
		types.CategoryConsumption: 30,
		types.CategoryEnergy:      25,
		types.CategoryTransport:   25,
		types.CategoryFood:        10,
		types.CategoryWaste:       10,
	}
	rules := fullRuleTable()

	result := Suggest(breakdown, rules)

	expected := []types.Category{
		types.CategoryTransport,
		types.CategoryFood,
		types.CategoryEnergy,
		types.CategoryWaste,
		types.CategoryConsumption,
	}
	if len(result.Suggestions) != len(expected) {
		t.Fatalf("expected %d suggestions, got %d", len(expected), len(result.Suggestions))
	}
	for i, cat := range expected {
		if result.Suggestions[i].Category != cat {
			t.Errorf("position %d: expected %s, got %s", i, cat, result.Suggestions[i].Category)
		}
	}
}

func TestSuggestCapsAtFive(t *testing.T) {
	breakdown := types.Breakdown{
		types.CategoryTransport:   20,
		types.CategoryFood:        20,
		types.CategoryEnergy:      20,
		types.CategoryWaste:       20,
		types.CategoryConsumption: 20,
	}

	result := Suggest(breakdown, fullRuleTable())

	if len(result.Suggestions) > MaxSuggestions {
		t.Errorf("expected at most %d suggestions, got %d", MaxSuggestions, len(result.Suggestions))
	}

	var sum float64
	for _, s := range result.Suggestions {
		sum += s.Savings
	}
	if !almostEqual(result.TotalPotentialSavings, types.Round2(sum)) {
		t.Errorf("savings total %v does not match sum %v", result.TotalPotentialSavings, sum)
	}
}

// fullRuleTable covers all five categories with a low threshold
func fullRuleTable() *RuleTable {
	rules := make(map[types.Category]Rule)
	for i, cat := range types.CategoryOrder {
		rules[cat] = Rule{
			Threshold: 0.01,
			Tips:      []Tip{{Text: "tip for " + string(cat), Savings: float64(i + 1), Impact: "medium"}},
		}
	}
	return NewRuleTable(rules)
}
