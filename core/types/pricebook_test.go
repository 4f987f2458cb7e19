package types

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceBookResolvePicksMostAuthoritativeSource(t *testing.T) {
	product := &Product{ID: "p1", SharedSpecID: "spec-1"}
	book := &PriceBook{Entries: []PriceBookEntry{
		{ID: "e1", SeasonYear: 2026, ProductID: "p1", Price: decimal.NewFromInt(9), Source: SourceEstimated},
		{ID: "e2", SeasonYear: 2026, SharedSpecID: "spec-1", Price: decimal.NewFromInt(8), Source: SourceAwarded},
		{ID: "e3", SeasonYear: 2025, ProductID: "p1", Price: decimal.NewFromInt(7), Source: SourceManualOverride},
	}}

	entry, ok := book.Resolve(2026, product)
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.ID != "e2" {
		t.Errorf("resolved %q, want e2 (awarded beats estimated; 2025 excluded)", entry.ID)
	}
}

func TestPriceBookResolveTieKeepsEarliestEntry(t *testing.T) {
	product := &Product{ID: "p1"}
	book := &PriceBook{Entries: []PriceBookEntry{
		{ID: "first", SeasonYear: 2026, ProductID: "p1", Source: SourceAwarded},
		{ID: "second", SeasonYear: 2026, ProductID: "p1", Source: SourceAwarded},
	}}

	entry, _ := book.Resolve(2026, product)
	if entry.ID != "first" {
		t.Errorf("resolved %q, want deterministic first entry", entry.ID)
	}
}

func TestPriceBookResolveNilReceivers(t *testing.T) {
	var book *PriceBook
	if _, ok := book.Resolve(2026, &Product{ID: "p"}); ok {
		t.Error("nil book should not match")
	}
}

func TestEmptySpecIDsDoNotMatch(t *testing.T) {
	// A blank shared spec on both sides must not count as a match.
	entry := &PriceBookEntry{SeasonYear: 2026}
	if entry.Matches(2026, &Product{ID: "p1"}) {
		t.Error("entry without product_id or shared_spec_id matched")
	}
}

func TestFiniteOrZero(t *testing.T) {
	if FiniteOrZero(math.NaN()) != 0 || FiniteOrZero(math.Inf(-1)) != 0 {
		t.Error("non-finite values should coerce to zero")
	}
	if FiniteOrZero(42.5) != 42.5 {
		t.Error("finite values should pass through")
	}
}

func TestProductDensityDefault(t *testing.T) {
	p := &Product{Form: FormLiquid}
	if p.Density() != DefaultLiquidDensity {
		t.Errorf("Density = %v, want default %v", p.Density(), DefaultLiquidDensity)
	}
	d := 11.5
	p.DensityLbsPerGal = &d
	if p.Density() != 11.5 {
		t.Errorf("Density = %v, want 11.5", p.Density())
	}
}
