// Package types - Derived summary types
package types

import "github.com/shopspring/decimal"

// CoverageGroup is a bucketed cluster of treatments within one pass that
// share near-equal acreage coverage. Derived, never stored.
type CoverageGroup struct {
	// CoveragePercent is the bucketed coverage (tolerance band key)
	CoveragePercent float64 `json:"coverage_percent"`

	// TreatmentIDs lists the treatments in this group, in plan order
	TreatmentIDs []string `json:"treatment_ids"`

	// CostPerTreatedAcre is the stacked per-acre cost of all products in
	// the group (summed, not averaged - these are co-applied products)
	CostPerTreatedAcre decimal.Decimal `json:"cost_per_treated_acre"`

	// CostPerFieldAcre spreads the treated-acre cost over the whole field
	CostPerFieldAcre decimal.Decimal `json:"cost_per_field_acre"`

	// AcresTreated is total acreage scaled by the bucketed coverage
	AcresTreated float64 `json:"acres_treated"`
}

// PassSummary is the derived report for one application pass
type PassSummary struct {
	// TimingID identifies the pass
	TimingID string `json:"timing_id"`

	// TimingName is the pass's human-readable name
	TimingName string `json:"timing_name,omitempty"`

	// Order is the pass sequence position
	Order int `json:"order"`

	// StageStart and StageEnd copy the timing's growth-stage window
	StageStart GrowthStage `json:"stage_start,omitempty"`
	StageEnd   GrowthStage `json:"stage_end,omitempty"`

	// TreatmentCount is the number of included (non-skipped) treatments
	TreatmentCount int `json:"treatment_count"`

	// TotalCost is the pass spend across the field
	TotalCost decimal.Decimal `json:"total_cost"`

	// AverageCoverage is the mean coverage percent of included treatments
	AverageCoverage float64 `json:"average_coverage"`

	// Nutrients is the pass's total delivered nutrient mass in pounds
	Nutrients Nutrients `json:"nutrients"`

	// Groups are the pass's coverage groups, sorted by descending coverage
	Groups []CoverageGroup `json:"groups"`

	// Pattern classifies the pass's overall coverage shape
	Pattern PassPattern `json:"pattern"`

	// Dominant is the coverage group carrying the most treatments
	Dominant *CoverageGroup `json:"dominant,omitempty"`

	// CostPerTreatedAcre is pass spend divided by acres actually treated
	CostPerTreatedAcre decimal.Decimal `json:"cost_per_treated_acre"`

	// CostPerFieldAcre is pass spend divided by total field acreage
	CostPerFieldAcre decimal.Decimal `json:"cost_per_field_acre"`

	// Skipped lists treatments excluded from this pass's totals
	Skipped []SkippedTreatment `json:"skipped,omitempty"`
}

// IntensityFactor is one pressure signal inside the intensity score
type IntensityFactor struct {
	// Name identifies the factor
	Name string `json:"name"`

	// Value is the raw factor value before weighting
	Value float64 `json:"value"`

	// Weight is the factor's share of the composite score
	Weight float64 `json:"weight"`

	// Weighted is Value * Weight
	Weighted float64 `json:"weighted"`
}

// Intensity is the composite program intensity result
type Intensity struct {
	// Score is the composite score in [0,1]
	Score float64 `json:"score"`

	// Rating maps the score onto a 1-5 scale
	Rating int `json:"rating"`

	// Label is the qualitative rating label
	Label string `json:"label"`

	// Factors is the per-signal breakdown
	Factors []IntensityFactor `json:"factors"`
}

// NutrientTimingSplit buckets season nutrients into positional thirds
type NutrientTimingSplit struct {
	Early Nutrients `json:"early"`
	Mid   Nutrients `json:"mid"`
	Late  Nutrients `json:"late"`
}

// SeasonSummary is the derived report for a whole crop season
type SeasonSummary struct {
	// PlanID identifies the source plan
	PlanID string `json:"plan_id"`

	// Crop is the planted crop
	Crop CropType `json:"crop"`

	// TotalAcres is the field acreage
	TotalAcres float64 `json:"total_acres"`

	// TotalCost is season spend including seed treatments
	TotalCost decimal.Decimal `json:"total_cost"`

	// SeedCost is the seed-treatment share of TotalCost
	SeedCost decimal.Decimal `json:"seed_cost"`

	// CostPerAcre is TotalCost over TotalAcres (zero for a zero-acre plan)
	CostPerAcre decimal.Decimal `json:"cost_per_acre"`

	// Nutrients is the season's total delivered nutrient mass in pounds
	Nutrients Nutrients `json:"nutrients"`

	// NutrientTiming splits nutrients into early/mid/late thirds by pass
	// position
	NutrientTiming NutrientTimingSplit `json:"nutrient_timing"`

	// EarlyCost, MidCost and LateCost split pass spend the same way
	EarlyCost decimal.Decimal `json:"early_cost"`
	MidCost   decimal.Decimal `json:"mid_cost"`
	LateCost  decimal.Decimal `json:"late_cost"`

	// Balance classifies how spend distributes across the season
	Balance BalanceStatus `json:"balance"`

	// Intensity is the composite program intensity result
	Intensity Intensity `json:"intensity"`

	// Passes holds the per-pass summaries, in pass order
	Passes []PassSummary `json:"passes"`

	// Skipped lists every treatment excluded from season totals
	Skipped []SkippedTreatment `json:"skipped,omitempty"`
}
