// Package coverage - Tolerance-band coverage grouping
package coverage

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"cropcost/core/cost"
	"cropcost/core/types"
)

// Bands holds the tolerance bands used to bucket coverage percentages.
// Bucketing is deliberately not plain rounding: operator-entered coverages
// like 58% and 62% should report as one "60%" group, while exact and
// near-full coverage stay distinct from everything below.
type Bands struct {
	// FullMin absorbs near-full coverage into the 100% bucket
	FullMin float64 `json:"full_min"`

	// MidLow..MidHigh absorbs mid-range coverage into the 60% bucket
	MidLow  float64 `json:"mid_low"`
	MidHigh float64 `json:"mid_high"`

	// TrialLow..TrialHigh absorbs small-plot coverage into the 25% bucket
	TrialLow  float64 `json:"trial_low"`
	TrialHigh float64 `json:"trial_high"`
}

// DefaultBands returns the standard tolerance bands
func DefaultBands() Bands {
	return Bands{
		FullMin:   95,
		MidLow:    55,
		MidHigh:   70,
		TrialLow:  20,
		TrialHigh: 30,
	}
}

// Bucket maps a coverage percent onto its band key.
// Percentages outside every band round to the nearest 10.
func (b Bands) Bucket(pct float64) float64 {
	pct = types.FiniteOrZero(pct)
	switch {
	case pct >= b.FullMin:
		return 100
	case pct >= b.MidLow && pct <= b.MidHigh:
		return 60
	case pct >= b.TrialLow && pct <= b.TrialHigh:
		return 25
	default:
		return math.Round(pct/10) * 10
	}
}

// Bucket maps a coverage percent onto its band key with default bands
func Bucket(pct float64) float64 {
	return DefaultBands().Bucket(pct)
}

// BuildGroups buckets a pass's treatments into coverage groups.
// Each group sums the per-acre cost of its treatments - co-applied
// products stack rather than average. Treatments whose product or tier
// reference cannot be resolved are excluded and reported in the skip list.
// Groups come back sorted by descending coverage.
func BuildGroups(treatments []types.Treatment, plan *types.Plan, catalog types.Catalog, eng cost.Engine, bands Bands) ([]types.CoverageGroup, []types.SkippedTreatment) {
	byBucket := make(map[float64]*types.CoverageGroup)
	var keys []float64
	var skipped []types.SkippedTreatment

	for i := range treatments {
		t := &treatments[i]
		product, ok := catalog.Lookup(t.ProductID)
		if !ok {
			skipped = append(skipped, types.SkippedTreatment{
				TreatmentID: t.ID,
				ProductID:   t.ProductID,
				Reason:      types.SkipMissingProduct,
			})
			continue
		}
		pct, ok := Effective(t, plan)
		if !ok {
			skipped = append(skipped, types.SkippedTreatment{
				TreatmentID: t.ID,
				ProductID:   t.ProductID,
				Reason:      types.SkipMissingTier,
			})
			continue
		}

		key := bands.Bucket(pct)
		group, ok := byBucket[key]
		if !ok {
			group = &types.CoverageGroup{CoveragePercent: key}
			byBucket[key] = group
			keys = append(keys, key)
		}
		group.TreatmentIDs = append(group.TreatmentIDs, t.ID)
		group.CostPerTreatedAcre = group.CostPerTreatedAcre.Add(eng.PerAcre(t, product))
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(keys)))

	groups := make([]types.CoverageGroup, 0, len(keys))
	for _, key := range keys {
		g := byBucket[key]
		fraction := decimal.NewFromFloat(key / 100)
		g.CostPerFieldAcre = g.CostPerTreatedAcre.Mul(fraction)
		g.AcresTreated = types.FiniteOrZero(plan.TotalAcres) * key / 100
		groups = append(groups, *g)
	}
	return groups, skipped
}
