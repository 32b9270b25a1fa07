// Package offset implements the carbon offset estimator.
// Given a positive footprint it prices a fixed project catalog; the
// only hard rejection in the estimation pipeline lives here.
package offset

import (
	"fmt"

	"github.com/shopspring/decimal"

	"ecotrack/core/types"
	"ecotrack/internal/errors"
)

// kgPerTon converts kgCO2e to offset tons
var kgPerTon = decimal.NewFromInt(1000)

// Project is one offset project in the static catalog
type Project struct {
	// Name is the project name
	Name string

	// Type is the project category (Reforestation, Renewable Energy)
	Type string

	// CostPerTon is the price per metric ton CO2e in USD
	CostPerTon decimal.Decimal

	// Description templates the impact text; it receives the
	// footprint in kg
	Description string

	// ReferenceID is the registry reference for the project
	ReferenceID string

	// CertificateURL points at the certificate download
	CertificateURL string
}

// Catalog is the fixed project list used for every estimate
type Catalog []Project

// DefaultCatalog returns the shipped offset catalog
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:           "Amazon Rainforest Reforestation",
			Type:           "Reforestation",
			CostPerTon:     decimal.NewFromInt(15),
			Description:    "Plant trees to offset %.1f kg of CO2 emissions",
			ReferenceID:    "0x1234567890abcdef",
			CertificateURL: "https://example.com/certificate/123",
		},
		{
			Name:           "Solar Energy Project - India",
			Type:           "Renewable Energy",
			CostPerTon:     decimal.NewFromInt(25),
			Description:    "Support solar energy development to offset %.1f kg of CO2",
			ReferenceID:    "0xabcdef1234567890",
			CertificateURL: "https://example.com/certificate/456",
		},
		{
			Name:           "Wind Farm - Texas",
			Type:           "Renewable Energy",
			CostPerTon:     decimal.NewFromInt(20),
			Description:    "Invest in wind energy to offset %.1f kg of CO2",
			ReferenceID:    "0x9876543210fedcba",
			CertificateURL: "https://example.com/certificate/789",
		},
	}
}

// Option is a priced offset recommendation
type Option struct {
	Name           string          `json:"project_name"`
	Type           string          `json:"project_type"`
	CostPerTon     decimal.Decimal `json:"cost_per_ton"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Description    string          `json:"impact_description"`
	ReferenceID    string          `json:"reference_id"`
	CertificateURL string          `json:"certificate_url,omitempty"`
}

// Result is the offset estimator output
type Result struct {
	Recommendations []Option `json:"recommendations"`
	TotalFootprint  float64  `json:"total_footprint"`
	Message         string   `json:"message"`
}

// Estimate prices the catalog for a footprint.
// Rejects non-positive footprints; everything else is deterministic
// given the catalog.
func Estimate(footprintKg float64, catalog Catalog) (*Result, error) {
	if footprintKg <= 0 {
		return nil, errors.Input("footprint must be greater than 0")
	}

	tons := decimal.NewFromFloat(footprintKg).Div(kgPerTon)

	options := make([]Option, 0, len(catalog))
	for _, p := range catalog {
		options = append(options, Option{
			Name:           p.Name,
			Type:           p.Type,
			CostPerTon:     p.CostPerTon,
			TotalCost:      tons.Mul(p.CostPerTon).Round(2),
			Description:    fmt.Sprintf(p.Description, footprintKg),
			ReferenceID:    p.ReferenceID,
			CertificateURL: p.CertificateURL,
		})
	}

	return &Result{
		Recommendations: options,
		TotalFootprint:  types.Round2(footprintKg),
		Message:         fmt.Sprintf("Found %d offset options for %.1f kg CO2", len(options), footprintKg),
	}, nil
}
