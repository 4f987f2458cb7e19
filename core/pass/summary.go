// Package pass - Pass summary builder
package pass

import (
	"github.com/shopspring/decimal"

	"cropcost/core/cost"
	"cropcost/core/coverage"
	"cropcost/core/nutrient"
	"cropcost/core/types"
)

// BuildSummary derives the full report for one application pass.
// Totals use each treatment's actual resolved coverage; the bucketed
// coverage groups are a reporting view on top. Treatments with unresolved
// product or tier references contribute nothing and appear in the
// summary's skip list.
func BuildSummary(timing types.Timing, plan *types.Plan, catalog types.Catalog, eng cost.Engine, bands coverage.Bands) types.PassSummary {
	treatments := plan.TreatmentsFor(timing.ID)
	groups, skipped := coverage.BuildGroups(treatments, plan, catalog, eng, bands)

	summary := types.PassSummary{
		TimingID:   timing.ID,
		TimingName: timing.Name,
		Order:      timing.Order,
		StageStart: timing.StageStart,
		StageEnd:   timing.StageEnd,
		Groups:     groups,
		Skipped:    skipped,
	}

	var coverageSum float64
	for i := range treatments {
		t := &treatments[i]
		product, ok := catalog.Lookup(t.ProductID)
		if !ok {
			continue
		}
		pct, ok := coverage.Effective(t, plan)
		if !ok {
			continue
		}

		coveredAcres := types.FiniteOrZero(plan.TotalAcres) * pct / 100
		acres := decimal.NewFromFloat(coveredAcres)
		summary.TotalCost = summary.TotalCost.Add(eng.PerAcre(t, product).Mul(acres))
		summary.Nutrients = summary.Nutrients.Add(nutrient.ForTreatment(t, product).Scale(coveredAcres))
		coverageSum += pct
		summary.TreatmentCount++
	}

	if summary.TreatmentCount > 0 {
		summary.AverageCoverage = coverageSum / float64(summary.TreatmentCount)
	}

	var treatedAcres float64
	for _, g := range groups {
		treatedAcres += g.AcresTreated
	}
	if treatedAcres > 0 {
		summary.CostPerTreatedAcre = summary.TotalCost.Div(decimal.NewFromFloat(treatedAcres))
	}
	if plan.TotalAcres > 0 {
		summary.CostPerFieldAcre = summary.TotalCost.Div(decimal.NewFromFloat(plan.TotalAcres))
	}

	summary.Pattern = Classify(groups, summary.TreatmentCount)
	summary.Dominant = Dominant(summary.Groups)
	return summary
}
