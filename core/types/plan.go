// Package types - Crop plan domain types
package types

// Plan is a crop input plan for one crop and season.
// The engine treats it as a read-only snapshot; plan editing happens
// elsewhere.
type Plan struct {
	// ID uniquely identifies the plan
	ID string `json:"id"`

	// Name is a human-readable plan name
	Name string `json:"name,omitempty"`

	// Crop is the planted crop type
	Crop CropType `json:"crop"`

	// SeasonYear is the crop year this plan belongs to
	SeasonYear int `json:"season_year"`

	// TotalAcres is the field acreage the plan covers
	TotalAcres float64 `json:"total_acres"`

	// Tiers is the legacy percentage-based grouping, kept as a coverage
	// fallback for treatments without an explicit percentage
	Tiers []Tier `json:"tiers,omitempty"`

	// Timings is the ordered list of application passes
	Timings []Timing `json:"timings"`

	// Treatments is the list of planned product applications
	Treatments []Treatment `json:"treatments"`

	// SeedTreatments is the list of seed-applied products
	SeedTreatments []SeedTreatment `json:"seed_treatments,omitempty"`
}

// TierByName returns the named tier, if the plan defines it
func (p *Plan) TierByName(name string) (*Tier, bool) {
	for i := range p.Tiers {
		if p.Tiers[i].Name == name {
			return &p.Tiers[i], true
		}
	}
	return nil, false
}

// TreatmentsFor returns the treatments assigned to a timing, in plan order
func (p *Plan) TreatmentsFor(timingID string) []Treatment {
	var out []Treatment
	for _, t := range p.Treatments {
		if t.TimingID == timingID {
			out = append(out, t)
		}
	}
	return out
}

// Tier is a legacy, percentage-based acreage grouping
type Tier struct {
	// Name identifies the tier within the plan
	Name string `json:"name"`

	// Percent is the fraction of total acreage the tier covers (0-100)
	Percent float64 `json:"percent"`
}

// Timing is one discrete application event (a "pass") in the season
type Timing struct {
	// ID uniquely identifies the timing within the plan
	ID string `json:"id"`

	// Name is a human-readable pass name (e.g., "Pre-plant burndown")
	Name string `json:"name,omitempty"`

	// Order is the pass sequence position within the season
	Order int `json:"order"`

	// StageStart is the opening growth stage of the application window
	StageStart GrowthStage `json:"stage_start,omitempty"`

	// StageEnd is the closing growth stage of the application window
	StageEnd GrowthStage `json:"stage_end,omitempty"`
}

// GrowthStage is a crop growth stage code (e.g., "V6", "R3", "heading")
type GrowthStage string

// Treatment is one planned product application within a pass
type Treatment struct {
	// ID uniquely identifies the treatment within the plan
	ID string `json:"id"`

	// TimingID assigns the treatment to a pass
	TimingID string `json:"timing_id"`

	// ProductID references the applied product in the catalog
	ProductID string `json:"product_id"`

	// Rate is the application rate per acre
	Rate float64 `json:"rate"`

	// RateUnit is the unit of Rate
	RateUnit RateUnit `json:"rate_unit"`

	// CoveragePercent is the explicit fraction of total acreage treated
	// (0-100). Nil falls back to the referenced tier's percentage, then 100.
	CoveragePercent *float64 `json:"coverage_percent,omitempty"`

	// TierName references a legacy tier for coverage fallback
	TierName string `json:"tier_name,omitempty"`

	// AutoLabel is the stored auto-computed tier label, if any
	AutoLabel TierLabel `json:"auto_label,omitempty"`

	// OverrideLabel is the user's label override. It wins over AutoLabel.
	OverrideLabel TierLabel `json:"override_label,omitempty"`
}

// SeedTreatment is a product applied to seed rather than to the field.
// Seed treatments always cover the whole planted acreage.
type SeedTreatment struct {
	// ID uniquely identifies the seed treatment within the plan
	ID string `json:"id"`

	// ProductID references the applied product in the catalog
	ProductID string `json:"product_id"`

	// Rate is the application rate per acre
	Rate float64 `json:"rate"`

	// RateUnit is the unit of Rate
	RateUnit RateUnit `json:"rate_unit"`
}
