// Package intensity scores a season plan's agronomic management pressure
// on a 0-1 composite scale mapped to a 1-5 rating.
package intensity

// Thresholds gathers every tunable constant of the intensity model in one
// place, so the cut points are testable and adjustable without touching
// the scoring logic.
type Thresholds struct {
	// PassCountWeight is the weight of the active-pass-count signal
	PassCountWeight float64 `json:"pass_count_weight"`

	// SelectivityWeight is the weight of the selectivity-load signal
	SelectivityWeight float64 `json:"selectivity_weight"`

	// LateSeasonWeight is the weight of the late-season-timing signal
	LateSeasonWeight float64 `json:"late_season_weight"`

	// CostDeviationWeight is the weight of the cost-deviation signal
	CostDeviationWeight float64 `json:"cost_deviation_weight"`

	// ReferencePassCount is the active pass count that saturates the
	// pass-count signal
	ReferencePassCount float64 `json:"reference_pass_count"`

	// ReferenceLatePasses is the late-pass count that saturates the
	// late-season signal
	ReferenceLatePasses float64 `json:"reference_late_passes"`

	// CoreMin and SelectiveMin are the coverage cut points for
	// classifying a pass's average coverage (shared with the treatment
	// tier split)
	CoreMin      float64 `json:"core_min"`
	SelectiveMin float64 `json:"selective_min"`

	// TrialLoad and SelectiveLoad are the per-pass selectivity weights
	// for trial and selective passes; core passes load zero
	TrialLoad     float64 `json:"trial_load"`
	SelectiveLoad float64 `json:"selective_load"`

	// CostDeviationCap bounds how much above-baseline cost can add.
	// Below-baseline cost never reduces the score.
	CostDeviationCap float64 `json:"cost_deviation_cap"`

	// DefaultFarmAvgCost is the cost-per-acre baseline used when the
	// caller supplies none
	DefaultFarmAvgCost float64 `json:"default_farm_avg_cost"`

	// RatingCuts are the score cut points for ratings 1-4; scores above
	// the last cut rate 5
	RatingCuts [4]float64 `json:"rating_cuts"`
}

// DefaultThresholds returns the standard intensity model constants
func DefaultThresholds() Thresholds {
	return Thresholds{
		PassCountWeight:     0.4,
		SelectivityWeight:   0.3,
		LateSeasonWeight:    0.2,
		CostDeviationWeight: 0.1,
		ReferencePassCount:  8,
		ReferenceLatePasses: 2,
		CoreMin:             80,
		SelectiveMin:        40,
		TrialLoad:           1.0,
		SelectiveLoad:       0.7,
		CostDeviationCap:    0.3,
		DefaultFarmAvgCost:  100,
		RatingCuts:          [4]float64{0.2, 0.4, 0.6, 0.8},
	}
}

// ratingLabels maps rating-1 onto a qualitative label
var ratingLabels = [5]string{"Low", "Moderate", "Managed", "High", "Very High"}

// Rating maps a composite score onto the 1-5 scale
func (t Thresholds) Rating(score float64) int {
	for i, cut := range t.RatingCuts {
		if score <= cut {
			return i + 1
		}
	}
	return 5
}

// Label returns the qualitative label for a rating
func Label(rating int) string {
	if rating < 1 || rating > len(ratingLabels) {
		return ratingLabels[0]
	}
	return ratingLabels[rating-1]
}
