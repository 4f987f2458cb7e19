// Package units canonicalizes application rates: liquid rates to gallons
// per acre, dry rates to pounds per acre.
// Unknown units degrade silently to identity - the rate is treated as
// already canonical rather than rejected.
package units

import "cropcost/core/types"

// gramsPerPound is the exact conversion constant used for dry gram rates
const gramsPerPound = 453.592

// liquidToGallons maps liquid rate units to their gallon equivalent
var liquidToGallons = map[types.RateUnit]float64{
	types.UnitOunce:  1.0 / 128.0,
	types.UnitQuart:  1.0 / 4.0,
	types.UnitGallon: 1,
}

// dryToPounds maps dry rate units to their pound equivalent
var dryToPounds = map[types.RateUnit]float64{
	types.UnitOunce: 1.0 / 16.0,
	types.UnitGram:  1.0 / gramsPerPound,
	types.UnitPound: 1,
	types.UnitTon:   2000,
}

// GallonsPerAcre converts a liquid rate to gallons per acre
func GallonsPerAcre(rate float64, unit types.RateUnit) float64 {
	rate = types.FiniteOrZero(rate)
	if f, ok := liquidToGallons[unit]; ok {
		return rate * f
	}
	return rate
}

// PoundsPerAcre converts a dry rate to pounds per acre
func PoundsPerAcre(rate float64, unit types.RateUnit) float64 {
	rate = types.FiniteOrZero(rate)
	if f, ok := dryToPounds[unit]; ok {
		return rate * f
	}
	return rate
}

// Canonical converts a rate to the canonical unit for a product form:
// gallons per acre for liquids, pounds per acre for dry products.
func Canonical(rate float64, unit types.RateUnit, form types.ProductForm) float64 {
	if form == types.FormLiquid {
		return GallonsPerAcre(rate, unit)
	}
	return PoundsPerAcre(rate, unit)
}
