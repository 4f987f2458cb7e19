// Package types - Price book types
package types

import "github.com/shopspring/decimal"

// PriceSource identifies where a price-book entry came from
type PriceSource string

const (
	// SourceManualOverride is an explicit user override, highest priority
	SourceManualOverride PriceSource = "manual_override"

	// SourceManual is a manually entered price
	SourceManual PriceSource = "manual"

	// SourceAwarded is a price awarded through a bid process
	SourceAwarded PriceSource = "awarded"

	// SourceEstimated is an estimated price, lowest priority
	SourceEstimated PriceSource = "estimated"
)

// sourcePriority orders sources from most to least authoritative
var sourcePriority = map[PriceSource]int{
	SourceManualOverride: 4,
	SourceManual:         3,
	SourceAwarded:        2,
	SourceEstimated:      1,
}

// Priority returns the source's rank; higher wins
func (s PriceSource) Priority() int {
	return sourcePriority[s]
}

// PriceBookEntry is a season-scoped negotiated or awarded price that may
// override a bid-eligible product's catalog price
type PriceBookEntry struct {
	// ID uniquely identifies the entry
	ID string `json:"id"`

	// SeasonYear scopes the entry to one crop year
	SeasonYear int `json:"season_year"`

	// ProductID keys the entry to a specific product
	ProductID string `json:"product_id,omitempty"`

	// SharedSpecID keys the entry to a shared commodity spec, matching any
	// product carrying the same spec
	SharedSpecID string `json:"shared_spec_id,omitempty"`

	// Price is the negotiated unit price
	Price decimal.Decimal `json:"price"`

	// Unit is the unit Price is quoted in
	Unit PriceUnit `json:"unit"`

	// Source tags where the price came from
	Source PriceSource `json:"source"`
}

// Matches reports whether the entry applies to a product in a season.
// A shared commodity spec match or a direct product id match qualifies.
func (e *PriceBookEntry) Matches(seasonYear int, p *Product) bool {
	if e.SeasonYear != seasonYear {
		return false
	}
	if e.SharedSpecID != "" && p.SharedSpecID != "" && e.SharedSpecID == p.SharedSpecID {
		return true
	}
	return e.ProductID != "" && e.ProductID == p.ID
}

// PriceBook is a collection of season-scoped price entries
type PriceBook struct {
	// Entries holds all known entries across seasons
	Entries []PriceBookEntry `json:"entries"`
}

// Resolve selects the single best entry for a product in a season.
// Among matching candidates the most authoritative source wins
// (manual_override > manual > awarded > estimated); ties keep the earliest
// entry, so resolution is deterministic.
func (b *PriceBook) Resolve(seasonYear int, p *Product) (*PriceBookEntry, bool) {
	if b == nil || p == nil {
		return nil, false
	}
	var best *PriceBookEntry
	for i := range b.Entries {
		e := &b.Entries[i]
		if !e.Matches(seasonYear, p) {
			continue
		}
		if best == nil || e.Source.Priority() > best.Source.Priority() {
			best = e
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}
