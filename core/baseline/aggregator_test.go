package baseline

import (
	"math"
	"testing"

	"ecotrack/core/factors"
	"ecotrack/core/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// sampleInput mirrors a typical fully-populated request
func sampleInput() *types.InputRecord {
	return &types.InputRecord{
		CommuteKm:      20,
		TransportMode:  "car_petrol",
		BeefKg:         0.5,
		ChickenKg:      1.0,
		PorkKg:         0.3,
		FishKg:         0.4,
		DairyKg:        2.0,
		VegetablesKg:   3.0,
		FruitsKg:       2.0,
		ElectricityKwh: 300,
		NaturalGasKwh:  150,
		WasteKg:        5,
		RecycledKg:     3,
		ClothingKg:     0.5,
	}
}

func TestAggregateCategoryValues(t *testing.T) {
	result := Aggregate(sampleInput(), factors.Default())

	tests := []struct {
		category types.Category
		expected float64
	}{
		{types.CategoryTransport, 20 * 0.192},
		{types.CategoryFood, 0.5*27.0 + 1.0*6.9 + 0.3*12.1 + 0.4*6.1 + 2.0*3.2 + 3.0*2.0 + 2.0*1.1},
		{types.CategoryEnergy, 300*0.475 + 150*0.185},
		{types.CategoryWaste, 5*0.57 + 3*RecyclingCreditPerKg},
		{types.CategoryConsumption, 0.5 * 22.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got, ok := result.Breakdown[tt.category]
			if !ok {
				t.Fatalf("expected category %s in breakdown", tt.category)
			}
			if !almostEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBaselineTotalEqualsSum(t *testing.T) {
	result := Aggregate(sampleInput(), factors.Default())

	if !almostEqual(result.BaselineTotal, result.Breakdown.Total()) {
		t.Errorf("baseline total %v does not equal breakdown sum %v",
			result.BaselineTotal, result.Breakdown.Total())
	}
}

func TestZeroInputProducesEmptyBreakdown(t *testing.T) {
	result := Aggregate(&types.InputRecord{TransportMode: "car_petrol"}, factors.Default())

	if len(result.Breakdown) != 0 {
		t.Errorf("expected empty breakdown, got %v", result.Breakdown)
	}
	if result.BaselineTotal != 0 {
		t.Errorf("expected zero total, got %v", result.BaselineTotal)
	}
}

func TestInclusionRules(t *testing.T) {
	tests := []struct {
		name     string
		input    *types.InputRecord
		category types.Category
		included bool
	}{
		{
			name:     "zero-factor transport mode excluded",
			input:    &types.InputRecord{CommuteKm: 10, TransportMode: "bicycle"},
			category: types.CategoryTransport,
			included: false,
		},
		{
			name:     "unknown transport mode degrades to no contribution",
			input:    &types.InputRecord{CommuteKm: 10, TransportMode: "teleport"},
			category: types.CategoryTransport,
			included: false,
		},
		{
			name:     "recycling-only waste is included negative",
			input:    &types.InputRecord{TransportMode: "car_petrol", RecycledKg: 4},
			category: types.CategoryWaste,
			included: true,
		},
		{
			name:     "exactly offsetting waste is excluded",
			input:    &types.InputRecord{TransportMode: "car_petrol", WasteKg: 2, RecycledKg: 5.7},
			category: types.CategoryWaste,
			included: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.input, factors.Default())
			_, ok := result.Breakdown[tt.category]
			if ok != tt.included {
				t.Errorf("category %s included=%v, expected %v", tt.category, ok, tt.included)
			}
		})
	}
}

func TestRecyclingCreditIsNegative(t *testing.T) {
	input := &types.InputRecord{TransportMode: "car_petrol", RecycledKg: 4}
	result := Aggregate(input, factors.Default())

	waste := result.Breakdown[types.CategoryWaste]
	if !almostEqual(waste, 4*RecyclingCreditPerKg) {
		t.Errorf("expected %v, got %v", 4*RecyclingCreditPerKg, waste)
	}
	if waste >= 0 {
		t.Errorf("expected negative waste aggregate, got %v", waste)
	}
}

func TestTransportDetailCarriesMetadata(t *testing.T) {
	result := Aggregate(sampleInput(), factors.Default())

	detail, ok := result.Details[types.CategoryTransport]
	if !ok {
		t.Fatal("expected transport details")
	}

	mode := detail["mode"]
	if mode.Kind != types.DetailText || mode.Text != "car_petrol" {
		t.Errorf("expected text detail car_petrol, got %+v", mode)
	}
	distance := detail["distance_km"]
	if distance.Kind != types.DetailNumber || !almostEqual(distance.Number, 20) {
		t.Errorf("expected numeric detail 20, got %+v", distance)
	}
}

func TestMissingFactorSkipsContribution(t *testing.T) {
	// A catalog with no energy factors at all: energy degrades to zero
	// contribution, everything else still aggregates.
	table := factors.NewBuilder("test").
		Add(types.CategoryTransport, "car_petrol", 0.192, "km").
		Build()

	input := sampleInput()
	result := Aggregate(input, table)

	if _, ok := result.Breakdown[types.CategoryEnergy]; ok {
		t.Error("expected no energy category without energy factors")
	}
	if _, ok := result.Breakdown[types.CategoryTransport]; !ok {
		t.Error("expected transport category from configured factor")
	}
	// Recycling credit is independent of the catalog
	if _, ok := result.Breakdown[types.CategoryWaste]; !ok {
		t.Error("expected waste category from recycling credit")
	}
}
