// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, boundary
// validation, engine orchestration, and output serialization. It
// never performs estimation logic.
package api

import (
	"time"

	"ecotrack/core/types"
	"ecotrack/internal/errors"
)

// EstimateResponse is the wire shape shared by the baseline and
// refined endpoints
type EstimateResponse struct {
	RequestID     string                 `json:"request_id"`
	Breakdown     types.Breakdown        `json:"breakdown"`
	BaselineTotal float64                `json:"baseline_total"`
	RefinedTotal  *float64               `json:"refined_total,omitempty"`
	Details       map[string]interface{} `json:"details"`
	Timestamp     time.Time              `json:"timestamp"`
}

// SuggestRequest carries a breakdown to generate tips for
type SuggestRequest struct {
	Breakdown types.Breakdown `json:"breakdown"`
}

// OffsetRequest carries the footprint to offset
type OffsetRequest struct {
	FootprintKg float64 `json:"footprint_kg"`
}

// ErrorResponse is the wire shape for rejections
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewEstimateResponse serializes an engine result. This is the single
// rounding boundary: category values are rounded first and the
// published totals are recomputed from the rounded values so the
// sum invariant holds exactly on the wire.
func NewEstimateResponse(requestID string, result *types.EstimateResult) *EstimateResponse {
	rounded := result.Breakdown.Rounded()

	resp := &EstimateResponse{
		RequestID: requestID,
		Breakdown: rounded,
		Details:   detailsPayload(result.Details, result.Insights),
		Timestamp: time.Now().UTC(),
	}

	if result.RefinedTotal != nil {
		refined := types.Round2(rounded.Total())
		resp.RefinedTotal = &refined
		resp.BaselineTotal = types.Round2(result.BaselineTotal)
	} else {
		resp.BaselineTotal = types.Round2(rounded.Total())
	}
	return resp
}

// detailsPayload merges the per-category details with the insight
// list under its reserved key
func detailsPayload(details types.Details, insights []string) map[string]interface{} {
	out := make(map[string]interface{}, len(details)+1)
	for cat, m := range details {
		out[string(cat)] = m
	}
	if len(insights) > 0 {
		out[types.InsightsKey] = insights
	}
	return out
}

// ValidateInput enforces the boundary preconditions: non-negative
// quantities, a known transport mode, and predictor feature ranges.
// The engine itself never re-checks these.
func ValidateInput(input *types.InputRecord) error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"commute_km", input.CommuteKm},
		{"beef_kg", input.BeefKg},
		{"chicken_kg", input.ChickenKg},
		{"pork_kg", input.PorkKg},
		{"fish_kg", input.FishKg},
		{"dairy_kg", input.DairyKg},
		{"vegetables_kg", input.VegetablesKg},
		{"fruits_kg", input.FruitsKg},
		{"electricity_kwh", input.ElectricityKwh},
		{"natural_gas_kwh", input.NaturalGasKwh},
		{"waste_kg", input.WasteKg},
		{"recycled_kg", input.RecycledKg},
		{"clothing_kg", input.ClothingKg},
		{"electronics_items", float64(input.ElectronicsItems)},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return errors.Inputf("%s must be non-negative, got %v", f.name, f.value)
		}
	}

	if input.TransportMode == "" {
		return errors.Input("transport_mode is required")
	}
	if !types.TransportModes[input.TransportMode] {
		return errors.Inputf("unknown transport_mode: %s", input.TransportMode)
	}

	if input.HouseSize != nil && *input.HouseSize < 0 {
		return errors.Inputf("house_size must be non-negative, got %v", *input.HouseSize)
	}
	if input.Occupants != nil && *input.Occupants < 1 {
		return errors.Inputf("occupants must be at least 1, got %d", *input.Occupants)
	}
	if input.ACHours != nil && (*input.ACHours < 0 || *input.ACHours > 24) {
		return errors.Inputf("ac_hours must be between 0 and 24, got %v", *input.ACHours)
	}
	return nil
}
