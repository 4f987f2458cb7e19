// Package nutrient computes delivered nutrient mass per covered acre
// from a product's guaranteed analysis.
package nutrient

import (
	"cropcost/core/types"
	"cropcost/core/units"
)

// PoundsOfProduct converts an application rate into pounds of product per
// acre. Liquids go through gallons and the product's density; dry rates
// convert directly.
func PoundsOfProduct(rate float64, unit types.RateUnit, p *types.Product) float64 {
	if p.Form == types.FormLiquid {
		return units.GallonsPerAcre(rate, unit) * p.Density()
	}
	return units.PoundsPerAcre(rate, unit)
}

// Delivery computes the nutrient mass delivered per covered acre by an
// application at the given rate. Products without an analysis deliver the
// zero vector. Pricing never enters nutrient math.
func Delivery(rate float64, unit types.RateUnit, p *types.Product) types.Nutrients {
	if p.Analysis == nil {
		return types.Nutrients{}
	}
	lbs := PoundsOfProduct(rate, unit, p)
	return types.Nutrients{
		Nitrogen:  lbs * types.FiniteOrZero(p.Analysis.Nitrogen) / 100,
		Phosphate: lbs * types.FiniteOrZero(p.Analysis.Phosphate) / 100,
		Potash:    lbs * types.FiniteOrZero(p.Analysis.Potash) / 100,
		Sulfur:    lbs * types.FiniteOrZero(p.Analysis.Sulfur) / 100,
	}
}

// ForTreatment computes per-acre nutrient delivery for a treatment
func ForTreatment(t *types.Treatment, p *types.Product) types.Nutrients {
	return Delivery(t.Rate, t.RateUnit, p)
}
