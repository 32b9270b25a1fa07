// Package refine implements the refinement overlay.
// The overlay blends the energy predictor with heuristic corrections
// on an independent copy of the baseline breakdown. Every rule is a
// graceful skip when its inputs are missing; refinement has no failure
// modes.
package refine

import (
	"fmt"
	"math"

	"ecotrack/core/factors"
	"ecotrack/core/predict"
	"ecotrack/core/types"
)

// Heuristic thresholds and magnitudes. All threshold comparisons are
// strictly-greater: a delta of exactly 50 kWh, a commute of exactly
// 100 km, or 20.0 kg of food do not trigger.
const (
	// EnergyDeltaThresholdKwh is the minimum predictor/reported gap
	// before the energy estimate is overridden
	EnergyDeltaThresholdKwh = 50.0

	// CommuteThresholdKm triggers the long-commute correction
	CommuteThresholdKm = 100.0

	// FoodThresholdKg triggers the high-food-volume correction,
	// summed over all food types per week
	FoodThresholdKg = 20.0

	// CommuteDamping is applied to transport on long commutes
	CommuteDamping = 0.9

	// FoodDamping is applied to food on high weekly volumes
	FoodDamping = 0.95

	// SeasonalUplift is applied to energy unconditionally when the
	// category exists
	SeasonalUplift = 1.02
)

// Op is an adjustment operation
type Op int

const (
	// OpReplace sets the category to the magnitude, creating the
	// category if it was absent
	OpReplace Op = iota

	// OpMultiply scales an existing category; absent categories are
	// left untouched and the adjustment does not count as applied
	OpMultiply
)

// Adjustment is one refinement rule outcome: a single operation on a
// single category plus the insight recorded if it applies. Modeling
// rules this way keeps the mixed replace/multiply semantics and the
// composition order auditable.
type Adjustment struct {
	Category  types.Category
	Op        Op
	Magnitude float64
	Insight   string
}

// apply folds one adjustment into the working breakdown and reports
// whether it actually changed anything
func (a Adjustment) apply(b types.Breakdown) bool {
	switch a.Op {
	case OpReplace:
		b[a.Category] = a.Magnitude
		return true
	case OpMultiply:
		v, ok := b[a.Category]
		if !ok {
			return false
		}
		b[a.Category] = v * a.Magnitude
		return true
	default:
		return false
	}
}

// Refine produces the refined result from a baseline result.
// The baseline breakdown is never mutated; rules compose sequentially
// on a working copy in a fixed order that must not change (the energy
// override feeds the seasonal uplift).
func Refine(input *types.InputRecord, base *types.EstimateResult, table *factors.Table, predictor predict.Predictor) *types.EstimateResult {
	working := base.Breakdown.Clone()
	insights := make([]string, 0, 4)

	for _, rule := range []func(*types.InputRecord, types.Breakdown, *factors.Table, predict.Predictor) *Adjustment{
		energyOverride,
		commuteHeuristic,
		foodHeuristic,
		seasonalHeuristic,
	} {
		adj := rule(input, working, table, predictor)
		if adj == nil {
			continue
		}
		if adj.apply(working) {
			insights = append(insights, adj.Insight)
		}
	}

	refinedTotal := working.Total()
	return &types.EstimateResult{
		Breakdown:     working,
		BaselineTotal: base.BaselineTotal,
		RefinedTotal:  &refinedTotal,
		Details:       base.Details.Clone(),
		Insights:      insights,
	}
}

// energyOverride replaces the energy estimate with the model
// prediction when the predictor disagrees with the reported usage by
// more than the threshold. Missing features, an unavailable predictor,
// or a missing electricity factor all skip the rule silently.
func energyOverride(input *types.InputRecord, working types.Breakdown, table *factors.Table, predictor predict.Predictor) *Adjustment {
	if predictor == nil || !input.HasPredictorFeatures() {
		return nil
	}
	predicted, ok := predictor.Predict(*input.HouseSize, *input.Occupants, *input.ACHours)
	if !ok {
		return nil
	}

	delta := predicted - input.ElectricityKwh
	if math.Abs(delta) <= EnergyDeltaThresholdKwh {
		return nil
	}

	factor, ok := table.Lookup(types.CategoryEnergy, "electricity_global_avg")
	if !ok {
		return nil
	}

	direction := "higher"
	if delta < 0 {
		direction = "lower"
	}
	return &Adjustment{
		Category:  types.CategoryEnergy,
		Op:        OpReplace,
		Magnitude: predicted * factor.Value,
		Insight: fmt.Sprintf(
			"Energy model predicts %.0f kWh/month for a %.0f m2 home with %d occupants, %.0f kWh %s than reported",
			predicted, *input.HouseSize, *input.Occupants, math.Abs(delta), direction),
	}
}

func commuteHeuristic(input *types.InputRecord, working types.Breakdown, table *factors.Table, predictor predict.Predictor) *Adjustment {
	if input.CommuteKm <= CommuteThresholdKm {
		return nil
	}
	return &Adjustment{
		Category:  types.CategoryTransport,
		Op:        OpMultiply,
		Magnitude: CommuteDamping,
		Insight: fmt.Sprintf(
			"Unusually high commute distance (%.0f km); transport estimate reduced by 10%%",
			input.CommuteKm),
	}
}

func foodHeuristic(input *types.InputRecord, working types.Breakdown, table *factors.Table, predictor predict.Predictor) *Adjustment {
	totalFood := input.TotalFoodKg()
	if totalFood <= FoodThresholdKg {
		return nil
	}
	return &Adjustment{
		Category:  types.CategoryFood,
		Op:        OpMultiply,
		Magnitude: FoodDamping,
		Insight: fmt.Sprintf(
			"High weekly food volume (%.1f kg); food estimate reduced by 5%%",
			totalFood),
	}
}

// seasonalHeuristic always fires when energy is present, including on
// a value the energy override just replaced
func seasonalHeuristic(input *types.InputRecord, working types.Breakdown, table *factors.Table, predictor predict.Predictor) *Adjustment {
	if _, ok := working[types.CategoryEnergy]; !ok {
		return nil
	}
	return &Adjustment{
		Category:  types.CategoryEnergy,
		Op:        OpMultiply,
		Magnitude: SeasonalUplift,
		Insight:   "Seasonal adjustment applied to energy usage",
	}
}
