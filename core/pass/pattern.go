// Package pass builds per-pass summaries and classifies pass coverage
// patterns.
package pass

import "cropcost/core/types"

// trialCoverageMax is the bucketed coverage at or below which a group
// counts as small-plot work
const trialCoverageMax = 30

// Classify labels a pass's overall coverage shape from its coverage
// groups. A single coverage group means the whole pass runs at one
// acreage: small-plot coverage classifies as trial, anything larger as
// uniform. With multiple groups the pass is trial when more than half of
// its treatments sit in small-plot groups, otherwise selective.
func Classify(groups []types.CoverageGroup, treatmentCount int) types.PassPattern {
	if len(groups) == 0 {
		return types.PatternUniform
	}
	if len(groups) == 1 {
		if groups[0].CoveragePercent <= trialCoverageMax {
			return types.PatternTrial
		}
		return types.PatternUniform
	}

	trialTreatments := 0
	for _, g := range groups {
		if g.CoveragePercent <= trialCoverageMax {
			trialTreatments += len(g.TreatmentIDs)
		}
	}
	if treatmentCount > 0 && trialTreatments*2 > treatmentCount {
		return types.PatternTrial
	}
	return types.PatternSelective
}

// Dominant returns the coverage group carrying the most treatments.
// Ties keep the higher-coverage group, which sorts first.
func Dominant(groups []types.CoverageGroup) *types.CoverageGroup {
	var best *types.CoverageGroup
	for i := range groups {
		if best == nil || len(groups[i].TreatmentIDs) > len(best.TreatmentIDs) {
			best = &groups[i]
		}
	}
	return best
}
