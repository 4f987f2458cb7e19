// Package intensity - Composite scorer
package intensity

import (
	"github.com/shopspring/decimal"

	"cropcost/core/coverage"
	"cropcost/core/types"
)

// Factor names in the score breakdown
const (
	FactorPassCount     = "pass_count"
	FactorSelectivity   = "selectivity"
	FactorLateSeason    = "late_season"
	FactorCostDeviation = "cost_deviation"
)

// Score combines four independent pressure signals into one composite
// intensity result: how many passes the program runs, how selective those
// passes are, how late in the season they land, and how far the crop's
// cost per acre sits above the farm baseline.
//
// Only passes with at least one included treatment participate. A nil
// farmAvg falls back to the configured default baseline.
func Score(passes []types.PassSummary, crop types.CropType, costPerAcre decimal.Decimal, farmAvg *float64, th Thresholds) types.Intensity {
	var active []types.PassSummary
	for _, p := range passes {
		if p.TreatmentCount > 0 {
			active = append(active, p)
		}
	}

	passFactor := capAtOne(float64(len(active)) / th.ReferencePassCount)

	// Selectivity load: trial passes press hardest, core passes not at
	// all. Classification shares the tier split used for treatment
	// labels.
	split := coverage.Thresholds{CoreMin: th.CoreMin, SelectiveMin: th.SelectiveMin}
	var load float64
	for _, p := range active {
		switch split.Classify(p.AverageCoverage) {
		case types.TierTrial:
			load += th.TrialLoad
		case types.TierSelective:
			load += th.SelectiveLoad
		}
	}
	selectivityFactor := capAtOne(load / th.ReferencePassCount)

	var latePasses float64
	for _, p := range active {
		if IsLateSeason(crop, p.StageStart, p.StageEnd) {
			latePasses++
		}
	}
	lateFactor := capAtOne(latePasses / th.ReferenceLatePasses)

	baseline := th.DefaultFarmAvgCost
	if farmAvg != nil {
		baseline = types.FiniteOrZero(*farmAvg)
	}
	var costFactor float64
	if baseline > 0 {
		costFactor = (costPerAcre.InexactFloat64() - baseline) / baseline
	}
	if costFactor < 0 {
		costFactor = 0
	}
	if costFactor > th.CostDeviationCap {
		costFactor = th.CostDeviationCap
	}

	factors := []types.IntensityFactor{
		weighted(FactorPassCount, passFactor, th.PassCountWeight),
		weighted(FactorSelectivity, selectivityFactor, th.SelectivityWeight),
		weighted(FactorLateSeason, lateFactor, th.LateSeasonWeight),
		weighted(FactorCostDeviation, costFactor, th.CostDeviationWeight),
	}

	var score float64
	for _, f := range factors {
		score += f.Weighted
	}

	rating := th.Rating(score)
	return types.Intensity{
		Score:   score,
		Rating:  rating,
		Label:   Label(rating),
		Factors: factors,
	}
}

func weighted(name string, value, weight float64) types.IntensityFactor {
	return types.IntensityFactor{
		Name:     name,
		Value:    value,
		Weight:   weight,
		Weighted: value * weight,
	}
}

func capAtOne(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
