// Package coverage resolves treatment acreage coverage and groups
// treatments into tolerance-band coverage groups.
package coverage

import "cropcost/core/types"

// Thresholds holds the tier classification cut points.
// The same split serves treatment auto-labeling and the intensity scorer's
// selectivity classification: pct >= CoreMin is core, pct >= SelectiveMin
// is selective, everything below is trial. Lower edges are inclusive.
type Thresholds struct {
	// CoreMin is the minimum coverage percent for a core classification
	CoreMin float64 `json:"core_min"`

	// SelectiveMin is the minimum coverage percent for a selective
	// classification
	SelectiveMin float64 `json:"selective_min"`
}

// DefaultThresholds returns the standard 80/40 tier split
func DefaultThresholds() Thresholds {
	return Thresholds{CoreMin: 80, SelectiveMin: 40}
}

// Classify maps a coverage percent onto a tier label
func (t Thresholds) Classify(pct float64) types.TierLabel {
	switch {
	case pct >= t.CoreMin:
		return types.TierCore
	case pct >= t.SelectiveMin:
		return types.TierSelective
	default:
		return types.TierTrial
	}
}

// AutoLabel classifies a coverage percent with the default thresholds
func AutoLabel(pct float64) types.TierLabel {
	return DefaultThresholds().Classify(pct)
}

// Effective resolves the fraction of field acreage a treatment covers.
// Resolution order: explicit per-treatment percentage, then the referenced
// tier's percentage, then 100. The second return is false when the
// treatment names a tier the plan does not define and carries no explicit
// percentage; such treatments are excluded from all totals.
func Effective(t *types.Treatment, plan *types.Plan) (float64, bool) {
	if t.CoveragePercent != nil {
		return types.FiniteOrZero(*t.CoveragePercent), true
	}
	if t.TierName != "" {
		tier, ok := plan.TierByName(t.TierName)
		if !ok {
			return 0, false
		}
		return types.FiniteOrZero(tier.Percent), true
	}
	return 100, true
}

// EffectiveLabel resolves a treatment's tier label:
// user override, then stored auto label, then classification of the
// resolved coverage.
func EffectiveLabel(t *types.Treatment, plan *types.Plan) types.TierLabel {
	if t.OverrideLabel != "" {
		return t.OverrideLabel
	}
	if t.AutoLabel != "" {
		return t.AutoLabel
	}
	pct, _ := Effective(t, plan)
	return AutoLabel(pct)
}
