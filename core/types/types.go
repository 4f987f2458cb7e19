// Package types defines the shared value types of the crop plan engine.
// This package contains NO business logic - only type definitions.
// Everything here is a plain, serializable value object; derived entities
// are recomputed on every call and never persisted.
package types

import "math"

// CropType identifies the planted crop, used for late-stage lookup
type CropType string

const (
	CropCorn     CropType = "corn"
	CropSoybeans CropType = "soybeans"
	CropWheat    CropType = "wheat"
	CropCotton   CropType = "cotton"
)

// String returns the string representation
func (c CropType) String() string {
	return string(c)
}

// ProductForm distinguishes liquid from dry products
type ProductForm string

const (
	// FormLiquid products are rated in volume units and priced per gallon
	FormLiquid ProductForm = "liquid"

	// FormDry products are rated in weight units and priced per pound or ton
	FormDry ProductForm = "dry"
)

// RateUnit is the unit a treatment rate is expressed in
type RateUnit string

const (
	UnitGallon RateUnit = "gallon"
	UnitQuart  RateUnit = "quart"
	UnitOunce  RateUnit = "ounce"
	UnitPound  RateUnit = "pound"
	UnitGram   RateUnit = "gram"
	UnitTon    RateUnit = "ton"
)

// PriceUnit is the unit a price is quoted in
type PriceUnit string

const (
	PricePerGallon PriceUnit = "gallon"
	PricePerPound  PriceUnit = "pound"
	PricePerTon    PriceUnit = "ton"
)

// TierLabel classifies a treatment's acreage coverage
type TierLabel string

const (
	// TierCore covers most of the field (>=80%)
	TierCore TierLabel = "core"

	// TierSelective covers a meaningful partial acreage (>=40%)
	TierSelective TierLabel = "selective"

	// TierTrial covers a small plot (<40%)
	TierTrial TierLabel = "trial"
)

// PassPattern classifies the coverage shape of one application pass
type PassPattern string

const (
	// PatternUniform is whole-field or near-whole-field application
	PatternUniform PassPattern = "uniform"

	// PatternSelective is partial application across multiple coverage bands
	PatternSelective PassPattern = "selective"

	// PatternTrial is small-plot application
	PatternTrial PassPattern = "trial"
)

// BalanceStatus describes how season spend distributes across the season
type BalanceStatus string

const (
	BalanceBalanced   BalanceStatus = "balanced"
	BalanceHeavyEarly BalanceStatus = "heavy_early"
	BalanceHeavyLate  BalanceStatus = "heavy_late"
	BalanceSkewed     BalanceStatus = "skewed"
)

// SkipReason explains why a treatment was excluded from all totals
type SkipReason string

const (
	// SkipMissingProduct - the treatment's product id is not in the catalog
	SkipMissingProduct SkipReason = "missing_product"

	// SkipMissingTier - the treatment references a tier the plan does not define
	SkipMissingTier SkipReason = "missing_tier"
)

// SkippedTreatment records one excluded treatment and why.
// Totals follow the silent-exclusion arithmetic; this record makes the
// exclusion observable to the caller instead of quietly under-reporting.
type SkippedTreatment struct {
	// TreatmentID identifies the excluded treatment
	TreatmentID string `json:"treatment_id"`

	// ProductID is the product reference that failed to resolve, if any
	ProductID string `json:"product_id,omitempty"`

	// Reason is the exclusion reason code
	Reason SkipReason `json:"reason"`
}

// FiniteOrZero coerces NaN and infinities to zero.
// Applied at input boundaries so downstream arithmetic never propagates
// non-finite values.
func FiniteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
