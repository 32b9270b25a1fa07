// Package predict exposes the trained energy predictor to the engine.
// The engine consumes inference only: a bounded, synchronous call with
// two outcomes, a predicted monthly kWh or unavailable. Unavailability
// is a normal branch, never an error.
package predict

// Predictor predicts monthly household electricity usage.
// The boolean return is false when no prediction is available; callers
// must treat that as a graceful skip.
type Predictor interface {
	Predict(houseSize float64, occupants int, acHours float64) (float64, bool)
}

// Func adapts a plain function to the Predictor interface
type Func func(houseSize float64, occupants int, acHours float64) (float64, bool)

// Predict implements Predictor
func (f Func) Predict(houseSize float64, occupants int, acHours float64) (float64, bool) {
	return f(houseSize, occupants, acHours)
}

// ModelParams are the exported coefficients of the fitted model.
// The offline training pipeline produces them; inference here is a
// single linear evaluation floored at FloorKwh.
type ModelParams struct {
	Intercept     float64
	HouseSizeCoef float64
	OccupantCoef  float64
	ACHourCoef    float64
	FloorKwh      float64
}

// DefaultModelParams returns the shipped model coefficients
func DefaultModelParams() ModelParams {
	return ModelParams{
		Intercept:     200,
		HouseSizeCoef: 2,
		OccupantCoef:  50,
		ACHourCoef:    2,
		FloorKwh:      100,
	}
}

// LinearModel is the fitted energy usage model
type LinearModel struct {
	params ModelParams
}

// NewLinearModel creates a predictor from exported coefficients
func NewLinearModel(params ModelParams) *LinearModel {
	return &LinearModel{params: params}
}

// Predict evaluates the model, flooring the result at FloorKwh
func (m *LinearModel) Predict(houseSize float64, occupants int, acHours float64) (float64, bool) {
	kwh := m.params.Intercept +
		m.params.HouseSizeCoef*houseSize +
		m.params.OccupantCoef*float64(occupants) +
		m.params.ACHourCoef*acHours
	if kwh < m.params.FloorKwh {
		kwh = m.params.FloorKwh
	}
	return kwh, true
}

// Unavailable is a predictor that never produces a value, for
// deployments without a trained model
type Unavailable struct{}

// Predict always reports no prediction
func (Unavailable) Predict(houseSize float64, occupants int, acHours float64) (float64, bool) {
	return 0, false
}
