// Package engine exposes the crop plan engine's computation entry points.
// Every operation is a pure function over value inputs: no I/O, no shared
// mutable state, fresh result values on every call. Concurrent callers
// need no coordination, and byte-identical inputs always produce
// deep-equal outputs.
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"cropcost/core/cost"
	"cropcost/core/coverage"
	"cropcost/core/intensity"
	"cropcost/core/pass"
	"cropcost/core/season"
	"cropcost/core/types"
)

// PriceContext enables price-book-aware costing. Nil means catalog
// pricing throughout.
type PriceContext struct {
	// Book is the price book to consult for bid-eligible products
	Book *types.PriceBook

	// SeasonYear scopes price-book lookups. Zero means the plan's season.
	SeasonYear int
}

// Config carries the engine's tunable constants with documented defaults
type Config struct {
	// Bands are the coverage bucketing tolerance bands
	Bands coverage.Bands

	// Thresholds are the intensity model constants
	Thresholds intensity.Thresholds

	// FarmAvgCostPerAcre is the cost-deviation baseline. Nil falls back
	// to Thresholds.DefaultFarmAvgCost.
	FarmAvgCostPerAcre *float64
}

// DefaultConfig returns the standard engine configuration
func DefaultConfig() Config {
	return Config{
		Bands:      coverage.DefaultBands(),
		Thresholds: intensity.DefaultThresholds(),
	}
}

// resolver picks the price-resolution strategy for a plan
func resolver(plan *types.Plan, pc *PriceContext) cost.Resolver {
	if pc == nil || pc.Book == nil {
		return cost.CatalogResolver{}
	}
	year := pc.SeasonYear
	if year == 0 {
		year = plan.SeasonYear
	}
	return cost.PriceBookResolver{Book: pc.Book, SeasonYear: year}
}

// BuildCoverageGroups buckets treatments into coverage groups, returning
// the groups and the treatments that were excluded.
func BuildCoverageGroups(treatments []types.Treatment, plan *types.Plan, catalog types.Catalog, pc *PriceContext) ([]types.CoverageGroup, []types.SkippedTreatment) {
	return BuildCoverageGroupsWith(treatments, plan, catalog, pc, DefaultConfig())
}

// BuildCoverageGroupsWith is BuildCoverageGroups with explicit configuration
func BuildCoverageGroupsWith(treatments []types.Treatment, plan *types.Plan, catalog types.Catalog, pc *PriceContext, cfg Config) ([]types.CoverageGroup, []types.SkippedTreatment) {
	eng := cost.NewEngine(resolver(plan, pc))
	return coverage.BuildGroups(treatments, plan, catalog, eng, cfg.Bands)
}

// BuildPassSummary derives the full report for one pass
func BuildPassSummary(timing types.Timing, plan *types.Plan, catalog types.Catalog, pc *PriceContext) types.PassSummary {
	return BuildPassSummaryWith(timing, plan, catalog, pc, DefaultConfig())
}

// BuildPassSummaryWith is BuildPassSummary with explicit configuration
func BuildPassSummaryWith(timing types.Timing, plan *types.Plan, catalog types.Catalog, pc *PriceContext, cfg Config) types.PassSummary {
	eng := cost.NewEngine(resolver(plan, pc))
	return pass.BuildSummary(timing, plan, catalog, eng, cfg.Bands)
}

// BuildSeasonSummary derives the whole-season report: pass summaries in
// sequence order, season totals, the nutrient timing split, the balance
// status, the intensity score, and the list of every excluded treatment.
func BuildSeasonSummary(plan *types.Plan, catalog types.Catalog, pc *PriceContext) types.SeasonSummary {
	return BuildSeasonSummaryWith(plan, catalog, pc, DefaultConfig())
}

// BuildSeasonSummaryWith is BuildSeasonSummary with explicit configuration
func BuildSeasonSummaryWith(plan *types.Plan, catalog types.Catalog, pc *PriceContext, cfg Config) types.SeasonSummary {
	eng := cost.NewEngine(resolver(plan, pc))

	timings := make([]types.Timing, len(plan.Timings))
	copy(timings, plan.Timings)
	sort.SliceStable(timings, func(i, j int) bool {
		return timings[i].Order < timings[j].Order
	})

	passes := make([]types.PassSummary, 0, len(timings))
	for _, timing := range timings {
		passes = append(passes, pass.BuildSummary(timing, plan, catalog, eng, cfg.Bands))
	}

	seedCost, seedSkipped := seedTreatmentCost(plan, catalog, eng)

	summary := season.Build(plan, passes, seedCost)
	summary.Skipped = append(summary.Skipped, seedSkipped...)
	summary.Intensity = intensity.Score(passes, plan.Crop, summary.CostPerAcre, cfg.FarmAvgCostPerAcre, cfg.Thresholds)
	return summary
}

// seedTreatmentCost totals seed-treatment spend over the planted acreage.
// Seed treatments cover the whole field; missing product references skip
// with the same reason code as field treatments.
func seedTreatmentCost(plan *types.Plan, catalog types.Catalog, eng cost.Engine) (decimal.Decimal, []types.SkippedTreatment) {
	var total decimal.Decimal
	var skipped []types.SkippedTreatment
	acres := decimal.NewFromFloat(types.FiniteOrZero(plan.TotalAcres))

	for i := range plan.SeedTreatments {
		s := &plan.SeedTreatments[i]
		product, ok := catalog.Lookup(s.ProductID)
		if !ok {
			skipped = append(skipped, types.SkippedTreatment{
				TreatmentID: s.ID,
				ProductID:   s.ProductID,
				Reason:      types.SkipMissingProduct,
			})
			continue
		}
		total = total.Add(eng.SeedPerAcre(s, product).Mul(acres))
	}
	return total, skipped
}
