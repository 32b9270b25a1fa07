package offset

import (
	"testing"

	"github.com/shopspring/decimal"

	"ecotrack/internal/errors"
)

func TestEstimateRejectsNonPositiveFootprint(t *testing.T) {
	tests := []struct {
		name      string
		footprint float64
	}{
		{"zero", 0},
		{"negative", -12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Estimate(tt.footprint, DefaultCatalog())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if result != nil {
				t.Errorf("expected nil result, got %+v", result)
			}
			if !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected input error, got %v", err)
			}
		})
	}
}

func TestEstimateOneTonCostsExactlyCostPerTon(t *testing.T) {
	catalog := DefaultCatalog()

	result, err := Estimate(1000, catalog)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if len(result.Recommendations) != len(catalog) {
		t.Fatalf("expected %d options, got %d", len(catalog), len(result.Recommendations))
	}
	for i, opt := range result.Recommendations {
		if !opt.TotalCost.Equal(catalog[i].CostPerTon) {
			t.Errorf("%s: one ton should cost %s, got %s",
				opt.Name, catalog[i].CostPerTon, opt.TotalCost)
		}
	}
}

func TestEstimateProRatesAndRounds(t *testing.T) {
	catalog := Catalog{{
		Name:        "Test Project",
		Type:        "Reforestation",
		CostPerTon:  decimal.NewFromInt(15),
		Description: "Offset %.1f kg",
	}}

	// 123.456 kg at $15/ton is $1.85184, rounded to $1.85
	result, err := Estimate(123.456, catalog)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	want := decimal.RequireFromString("1.85")
	if !result.Recommendations[0].TotalCost.Equal(want) {
		t.Errorf("expected total cost %s, got %s", want, result.Recommendations[0].TotalCost)
	}
	if result.TotalFootprint != 123.46 {
		t.Errorf("expected rounded footprint 123.46, got %v", result.TotalFootprint)
	}
}

func TestEstimateMessageAndDescription(t *testing.T) {
	result, err := Estimate(250, DefaultCatalog())
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if result.Message != "Found 3 offset options for 250.0 kg CO2" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if result.Recommendations[0].Description != "Plant trees to offset 250.0 kg of CO2 emissions" {
		t.Errorf("unexpected description: %q", result.Recommendations[0].Description)
	}
	if result.Recommendations[0].ReferenceID == "" {
		t.Error("reference id must be carried onto the option")
	}
}
