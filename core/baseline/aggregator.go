// Package baseline implements the rule-based aggregation stage.
// Aggregation is a pure function of (input, factor table): no state,
// no side effects, no failure modes. Missing factors silently skip the
// contribution so a partially configured catalog degrades instead of
// erroring.
package baseline

import (
	"ecotrack/core/factors"
	"ecotrack/core/types"
)

// RecyclingCreditPerKg is the emission credit applied per kg recycled.
// A deliberate heuristic constant, independent of the factor catalog;
// it is the reason waste is the only category that may publish a
// non-positive aggregate.
const RecyclingCreditPerKg = -0.2

// Aggregate computes the baseline breakdown and details for a
// validated input record. Values are full precision; rounding is the
// response serializer's job.
func Aggregate(input *types.InputRecord, table *factors.Table) *types.EstimateResult {
	breakdown := make(types.Breakdown)
	details := make(types.Details)

	aggregateTransport(input, table, breakdown, details)
	aggregateFood(input, table, breakdown, details)
	aggregateEnergy(input, table, breakdown, details)
	aggregateWaste(input, table, breakdown, details)
	aggregateConsumption(input, table, breakdown, details)

	return &types.EstimateResult{
		Breakdown:     breakdown,
		BaselineTotal: breakdown.Total(),
		Details:       details,
	}
}

func aggregateTransport(input *types.InputRecord, table *factors.Table, breakdown types.Breakdown, details types.Details) {
	if input.CommuteKm <= 0 {
		return
	}
	factor, ok := table.Lookup(types.CategoryTransport, input.TransportMode)
	if !ok {
		return
	}
	emissions := input.CommuteKm * factor.Value
	if emissions <= 0 {
		return
	}
	breakdown[types.CategoryTransport] = emissions
	details[types.CategoryTransport] = types.DetailMap{
		"commute":     types.NumberDetail(emissions),
		"mode":        types.TextDetail(input.TransportMode),
		"distance_km": types.NumberDetail(input.CommuteKm),
	}
}

func aggregateFood(input *types.InputRecord, table *factors.Table, breakdown types.Breakdown, details types.Details) {
	items := []struct {
		activity string
		amount   float64
	}{
		{"beef", input.BeefKg},
		{"chicken", input.ChickenKg},
		{"pork", input.PorkKg},
		{"fish", input.FishKg},
		{"milk", input.DairyKg},
		{"vegetables", input.VegetablesKg},
		{"fruits", input.FruitsKg},
	}

	var total float64
	foodDetails := make(types.DetailMap)
	for _, item := range items {
		if item.amount <= 0 {
			continue
		}
		factor, ok := table.Lookup(types.CategoryFood, item.activity)
		if !ok {
			continue
		}
		emissions := item.amount * factor.Value
		total += emissions
		foodDetails[item.activity] = types.NumberDetail(emissions)
	}

	if total > 0 {
		breakdown[types.CategoryFood] = total
		details[types.CategoryFood] = foodDetails
	}
}

func aggregateEnergy(input *types.InputRecord, table *factors.Table, breakdown types.Breakdown, details types.Details) {
	var total float64
	energyDetails := make(types.DetailMap)

	if input.ElectricityKwh > 0 {
		if factor, ok := table.Lookup(types.CategoryEnergy, "electricity_global_avg"); ok {
			emissions := input.ElectricityKwh * factor.Value
			total += emissions
			energyDetails["electricity"] = types.NumberDetail(emissions)
		}
	}
	if input.NaturalGasKwh > 0 {
		if factor, ok := table.Lookup(types.CategoryEnergy, "natural_gas"); ok {
			emissions := input.NaturalGasKwh * factor.Value
			total += emissions
			energyDetails["natural_gas"] = types.NumberDetail(emissions)
		}
	}

	if total > 0 {
		breakdown[types.CategoryEnergy] = total
		details[types.CategoryEnergy] = energyDetails
	}
}

func aggregateWaste(input *types.InputRecord, table *factors.Table, breakdown types.Breakdown, details types.Details) {
	var total float64
	wasteDetails := make(types.DetailMap)

	if input.WasteKg > 0 {
		if factor, ok := table.Lookup(types.CategoryWaste, "municipal_waste"); ok {
			emissions := input.WasteKg * factor.Value
			total += emissions
			wasteDetails["landfill"] = types.NumberDetail(emissions)
		}
	}
	if input.RecycledKg > 0 {
		saving := input.RecycledKg * RecyclingCreditPerKg
		total += saving
		wasteDetails["recycling_saving"] = types.NumberDetail(saving)
	}

	// Waste may net out negative; only exact zero is omitted.
	if total != 0 {
		breakdown[types.CategoryWaste] = total
		details[types.CategoryWaste] = wasteDetails
	}
}

func aggregateConsumption(input *types.InputRecord, table *factors.Table, breakdown types.Breakdown, details types.Details) {
	var total float64
	consumptionDetails := make(types.DetailMap)

	if input.ClothingKg > 0 {
		if factor, ok := table.Lookup(types.CategoryConsumption, "clothing"); ok {
			emissions := input.ClothingKg * factor.Value
			total += emissions
			consumptionDetails["clothing"] = types.NumberDetail(emissions)
		}
	}
	if input.ElectronicsItems > 0 {
		if factor, ok := table.Lookup(types.CategoryConsumption, "electronics_smartphone"); ok {
			emissions := float64(input.ElectronicsItems) * factor.Value
			total += emissions
			consumptionDetails["electronics"] = types.NumberDetail(emissions)
		}
	}

	if total > 0 {
		breakdown[types.CategoryConsumption] = total
		details[types.CategoryConsumption] = consumptionDetails
	}
}
