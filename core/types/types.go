// Package types - Shared estimation engine types
package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Category identifies an emission category
type Category string

const (
	CategoryTransport   Category = "transport"
	CategoryFood        Category = "food"
	CategoryEnergy      Category = "energy"
	CategoryWaste       Category = "waste"
	CategoryConsumption Category = "consumption"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// CategoryOrder is the declared evaluation and serialization order.
// Breakdown iteration, suggestion selection, and response encoding all
// follow this order; it is never derived from map iteration.
var CategoryOrder = []Category{
	CategoryTransport,
	CategoryFood,
	CategoryEnergy,
	CategoryWaste,
	CategoryConsumption,
}

// TransportModes is the closed set of accepted transport modes.
// Boundary validation rejects anything outside this set before the
// engine runs.
var TransportModes = map[string]bool{
	"car_petrol":         true,
	"car_diesel":         true,
	"car_ev":             true,
	"motorbike":          true,
	"bus_diesel":         true,
	"train_electric":     true,
	"bicycle":            true,
	"walking":            true,
	"airplane_shorthaul": true,
	"airplane_longhaul":  true,
}

// InputRecord is one validated estimation request.
// Quantities are non-negative; range and enum validation is the
// boundary layer's responsibility, not the engine's.
type InputRecord struct {
	// Transport
	CommuteKm     float64 `json:"commute_km"`
	TransportMode string  `json:"transport_mode"`

	// Food, kg per week
	BeefKg       float64 `json:"beef_kg"`
	ChickenKg    float64 `json:"chicken_kg"`
	PorkKg       float64 `json:"pork_kg"`
	FishKg       float64 `json:"fish_kg"`
	DairyKg      float64 `json:"dairy_kg"`
	VegetablesKg float64 `json:"vegetables_kg"`
	FruitsKg     float64 `json:"fruits_kg"`

	// Energy, kWh per month
	ElectricityKwh float64 `json:"electricity_kwh"`
	NaturalGasKwh  float64 `json:"natural_gas_kwh"`

	// Waste, kg per week
	WasteKg    float64 `json:"waste_kg"`
	RecycledKg float64 `json:"recycled_kg"`

	// Consumption, per month
	ClothingKg       float64 `json:"clothing_kg"`
	ElectronicsItems int     `json:"electronics_items"`

	// Optional predictor features
	HouseSize *float64 `json:"house_size,omitempty"`
	Occupants *int     `json:"occupants,omitempty"`
	ACHours   *float64 `json:"ac_hours,omitempty"`
}

// TotalFoodKg returns the sum of all food quantities
func (r *InputRecord) TotalFoodKg() float64 {
	return r.BeefKg + r.ChickenKg + r.PorkKg + r.FishKg +
		r.DairyKg + r.VegetablesKg + r.FruitsKg
}

// HasPredictorFeatures reports whether all optional predictor inputs
// are present
func (r *InputRecord) HasPredictorFeatures() bool {
	return r.HouseSize != nil && r.Occupants != nil && r.ACHours != nil
}

// Breakdown maps categories to kgCO2e aggregates.
// A category key is present only if its aggregate satisfies the
// inclusion rule: strictly positive, except waste which is included
// whenever non-zero (recycling credit may drive it negative).
type Breakdown map[Category]float64

// Total sums all category values
func (b Breakdown) Total() float64 {
	var total float64
	for _, v := range b {
		total += v
	}
	return total
}

// Clone returns an independent copy
func (b Breakdown) Clone() Breakdown {
	out := make(Breakdown, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Rounded returns a copy with every value rounded to 2 decimals.
// Rounding happens exactly once, at the output boundary.
func (b Breakdown) Rounded() Breakdown {
	out := make(Breakdown, len(b))
	for k, v := range b {
		out[k] = Round2(v)
	}
	return out
}

// MarshalJSON encodes categories in CategoryOrder
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, cat := range CategoryOrder {
		v, ok := b[cat]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(strconv.Quote(string(cat)))
		buf.WriteByte(':')
		enc, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DetailKind discriminates detail entry variants
type DetailKind int

const (
	// DetailNumber is a numeric kgCO2e or quantity amount
	DetailNumber DetailKind = iota

	// DetailText is descriptive metadata (e.g. transport mode)
	DetailText
)

// Detail is one explanatory entry: either a numeric amount or a
// descriptive string, never both. Details are companion payload and
// never feed totals.
type Detail struct {
	Kind   DetailKind
	Number float64
	Text   string
}

// NumberDetail creates a numeric detail
func NumberDetail(v float64) Detail {
	return Detail{Kind: DetailNumber, Number: v}
}

// TextDetail creates a descriptive detail
func TextDetail(s string) Detail {
	return Detail{Kind: DetailText, Text: s}
}

// MarshalJSON encodes the active variant directly
func (d Detail) MarshalJSON() ([]byte, error) {
	if d.Kind == DetailText {
		return json.Marshal(d.Text)
	}
	return json.Marshal(Round2(d.Number))
}

// UnmarshalJSON decodes either variant
func (d *Detail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = TextDetail(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = NumberDetail(n)
	return nil
}

// DetailMap maps activity or metadata keys to detail entries
type DetailMap map[string]Detail

// Details is the per-category explanatory payload
type Details map[Category]DetailMap

// Clone returns an independent deep copy
func (d Details) Clone() Details {
	out := make(Details, len(d))
	for cat, m := range d {
		cm := make(DetailMap, len(m))
		for k, v := range m {
			cm[k] = v
		}
		out[cat] = cm
	}
	return out
}

// InsightsKey is the reserved details key carrying refinement insights
// in serialized responses
const InsightsKey = "ml_insights"

// EstimateResult is the engine output shared by the baseline and
// refined stages. RefinedTotal and Insights are set only by the
// refinement overlay; BaselineTotal is carried through unchanged for
// audit.
type EstimateResult struct {
	Breakdown     Breakdown
	BaselineTotal float64
	RefinedTotal  *float64
	Details       Details
	Insights      []string
}

// Round2 rounds to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
