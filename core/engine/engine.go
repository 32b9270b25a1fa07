// Package engine wires the estimation stages together.
// The engine owns no mutable state of its own: the factor store,
// predictor, rule table, and offset catalog are injected once at
// construction and shared read-only across requests.
package engine

import (
	"ecotrack/core/baseline"
	"ecotrack/core/factors"
	"ecotrack/core/offset"
	"ecotrack/core/predict"
	"ecotrack/core/refine"
	"ecotrack/core/suggest"
	"ecotrack/core/types"
)

// Engine is the hybrid emission estimation pipeline
type Engine struct {
	factors   *factors.Store
	predictor predict.Predictor
	rules     *suggest.RuleTable
	catalog   offset.Catalog
}

// New creates an engine from its collaborators
func New(store *factors.Store, predictor predict.Predictor, rules *suggest.RuleTable, catalog offset.Catalog) *Engine {
	return &Engine{
		factors:   store,
		predictor: predictor,
		rules:     rules,
		catalog:   catalog,
	}
}

// Factors returns the active factor snapshot
func (e *Engine) Factors() *factors.Table {
	return e.factors.Current()
}

// Calculate runs the baseline aggregation stage
func (e *Engine) Calculate(input *types.InputRecord) *types.EstimateResult {
	return baseline.Aggregate(input, e.factors.Current())
}

// Refine runs the full pipeline: baseline aggregation followed by the
// refinement overlay. Both stages see the same factor snapshot even if
// a reload happens mid-request.
func (e *Engine) Refine(input *types.InputRecord) *types.EstimateResult {
	table := e.factors.Current()
	base := baseline.Aggregate(input, table)
	return refine.Refine(input, base, table, e.predictor)
}

// Suggest generates reduction tips for a breakdown
func (e *Engine) Suggest(breakdown types.Breakdown) *suggest.Result {
	return suggest.Suggest(breakdown, e.rules)
}

// Offset prices the offset catalog for a footprint
func (e *Engine) Offset(footprintKg float64) (*offset.Result, error) {
	return offset.Estimate(footprintKg, e.catalog)
}
