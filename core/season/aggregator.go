// Package season rolls per-pass summaries into season totals: cost,
// nutrients, a positional early/mid/late timing split, and a cost-balance
// status.
package season

import (
	"github.com/shopspring/decimal"

	"cropcost/core/types"
)

// Balance cut points: a third carrying more than heavyShare of season
// spend is heavy; an early/late gap wider than skewGap is skewed.
const (
	heavyShare = 0.6
	skewGap    = 0.4
)

// Build aggregates pass summaries and a seed-treatment cost into a season
// summary. The intensity result is filled in by the caller; everything
// else derives here.
//
// The timing split is positional: passes divide into index-based thirds
// of the pass sequence, not calendar thirds.
func Build(plan *types.Plan, passes []types.PassSummary, seedCost decimal.Decimal) types.SeasonSummary {
	summary := types.SeasonSummary{
		PlanID:     plan.ID,
		Crop:       plan.Crop,
		TotalAcres: types.FiniteOrZero(plan.TotalAcres),
		SeedCost:   seedCost,
		TotalCost:  seedCost,
		Passes:     passes,
	}

	n := len(passes)
	for i, p := range passes {
		summary.TotalCost = summary.TotalCost.Add(p.TotalCost)
		summary.Nutrients = summary.Nutrients.Add(p.Nutrients)

		switch thirdIndex(i, n) {
		case 0:
			summary.EarlyCost = summary.EarlyCost.Add(p.TotalCost)
			summary.NutrientTiming.Early = summary.NutrientTiming.Early.Add(p.Nutrients)
		case 1:
			summary.MidCost = summary.MidCost.Add(p.TotalCost)
			summary.NutrientTiming.Mid = summary.NutrientTiming.Mid.Add(p.Nutrients)
		default:
			summary.LateCost = summary.LateCost.Add(p.TotalCost)
			summary.NutrientTiming.Late = summary.NutrientTiming.Late.Add(p.Nutrients)
		}

		summary.Skipped = append(summary.Skipped, p.Skipped...)
	}

	if summary.TotalAcres > 0 {
		summary.CostPerAcre = summary.TotalCost.Div(decimal.NewFromFloat(summary.TotalAcres))
	}

	summary.Balance = balance(summary.EarlyCost, summary.LateCost, summary.TotalCost)
	return summary
}

// thirdIndex assigns pass i of n to a positional third (0 early, 1 mid,
// 2 late)
func thirdIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return i * 3 / n
}

// balance classifies season spend distribution. Heavy-early wins over
// heavy-late wins over skewed; a zero-cost season is balanced.
func balance(early, late, total decimal.Decimal) types.BalanceStatus {
	if total.IsZero() {
		return types.BalanceBalanced
	}
	earlyRatio := early.Div(total).InexactFloat64()
	lateRatio := late.Div(total).InexactFloat64()

	switch {
	case earlyRatio > heavyShare:
		return types.BalanceHeavyEarly
	case lateRatio > heavyShare:
		return types.BalanceHeavyLate
	case earlyRatio-lateRatio > skewGap || lateRatio-earlyRatio > skewGap:
		return types.BalanceSkewed
	default:
		return types.BalanceBalanced
	}
}
