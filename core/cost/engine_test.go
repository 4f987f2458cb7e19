package cost

import (
	"testing"

	"github.com/shopspring/decimal"

	"cropcost/core/types"
)

func liquidProduct(price int64, bidEligible bool) *types.Product {
	return &types.Product{
		ID:          "liq-1",
		Form:        types.FormLiquid,
		Price:       decimal.NewFromInt(price),
		PriceUnit:   types.PricePerGallon,
		BidEligible: bidEligible,
	}
}

func TestCatalogLiquidCost(t *testing.T) {
	// 2 gal/ac at $10/gal = $20/ac.
	eng := NewEngine(nil)
	treatment := &types.Treatment{Rate: 2, RateUnit: types.UnitGallon}
	got := eng.PerAcre(treatment, liquidProduct(10, false))
	if !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("PerAcre = %s, want 20", got)
	}
}

func TestCatalogLiquidCostFromQuarts(t *testing.T) {
	eng := NewEngine(nil)
	treatment := &types.Treatment{Rate: 8, RateUnit: types.UnitQuart}
	got := eng.PerAcre(treatment, liquidProduct(10, false))
	if !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("PerAcre = %s, want 20", got)
	}
}

func TestCatalogDryCost(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		unit      types.RateUnit
		price     int64
		priceUnit types.PriceUnit
		want      int64
	}{
		{"per-pound price", 100, types.UnitPound, 1, types.PricePerPound, 100},
		{"per-ton price divides by 2000", 100, types.UnitPound, 400, types.PricePerTon, 20},
		{"ton rate with per-ton price", 1, types.UnitTon, 400, types.PricePerTon, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine(nil)
			product := &types.Product{
				Form:      types.FormDry,
				Price:     decimal.NewFromInt(tt.price),
				PriceUnit: tt.priceUnit,
			}
			treatment := &types.Treatment{Rate: tt.rate, RateUnit: tt.unit}
			got := eng.PerAcre(treatment, product)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("PerAcre = %s, want %d", got, tt.want)
			}
		})
	}
}

func bookWith(entries ...types.PriceBookEntry) *types.PriceBook {
	return &types.PriceBook{Entries: entries}
}

func TestPriceBookOverridesEligibleProduct(t *testing.T) {
	book := bookWith(types.PriceBookEntry{
		SeasonYear: 2026,
		ProductID:  "liq-1",
		Price:      decimal.NewFromInt(8),
		Unit:       types.PricePerGallon,
		Source:     types.SourceAwarded,
	})
	eng := NewEngine(PriceBookResolver{Book: book, SeasonYear: 2026})
	treatment := &types.Treatment{Rate: 2, RateUnit: types.UnitGallon}

	got := eng.PerAcre(treatment, liquidProduct(10, true))
	if !got.Equal(decimal.NewFromInt(16)) {
		t.Errorf("PerAcre with book price = %s, want 16", got)
	}
}

func TestPriceBookIgnoredForIneligibleProduct(t *testing.T) {
	book := bookWith(types.PriceBookEntry{
		SeasonYear: 2026,
		ProductID:  "liq-1",
		Price:      decimal.NewFromInt(8),
		Unit:       types.PricePerGallon,
		Source:     types.SourceAwarded,
	})
	eng := NewEngine(PriceBookResolver{Book: book, SeasonYear: 2026})
	treatment := &types.Treatment{Rate: 2, RateUnit: types.UnitGallon}

	got := eng.PerAcre(treatment, liquidProduct(10, false))
	if !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("PerAcre = %s, want catalog 20", got)
	}
}

func TestPriceBookFallsBackWithoutMatchingEntry(t *testing.T) {
	book := bookWith(types.PriceBookEntry{
		SeasonYear: 2025, // wrong season
		ProductID:  "liq-1",
		Price:      decimal.NewFromInt(8),
		Unit:       types.PricePerGallon,
		Source:     types.SourceAwarded,
	})
	eng := NewEngine(PriceBookResolver{Book: book, SeasonYear: 2026})
	treatment := &types.Treatment{Rate: 2, RateUnit: types.UnitGallon}

	got := eng.PerAcre(treatment, liquidProduct(10, true))
	if !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("PerAcre = %s, want catalog fallback 20", got)
	}
}

func TestPerWeightBookPriceConvertsThroughDensity(t *testing.T) {
	// Book quotes $0.50/lb for a liquid; with default density 10 lb/gal
	// that is $5/gal, so 2 gal/ac costs $10/ac.
	book := bookWith(types.PriceBookEntry{
		SeasonYear: 2026,
		ProductID:  "liq-1",
		Price:      decimal.NewFromFloat(0.5),
		Unit:       types.PricePerPound,
		Source:     types.SourceManual,
	})
	eng := NewEngine(PriceBookResolver{Book: book, SeasonYear: 2026})
	treatment := &types.Treatment{Rate: 2, RateUnit: types.UnitGallon}

	got := eng.PerAcre(treatment, liquidProduct(10, true))
	if !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("PerAcre = %s, want 10", got)
	}
}

func TestPerTonBookPriceOnLiquidUsesDensity(t *testing.T) {
	// $1000/ton = $0.50/lb; density 8 lb/gal makes $4/gal, rate 1 gal.
	density := 8.0
	product := liquidProduct(10, true)
	product.DensityLbsPerGal = &density

	book := bookWith(types.PriceBookEntry{
		SeasonYear: 2026,
		ProductID:  "liq-1",
		Price:      decimal.NewFromInt(1000),
		Unit:       types.PricePerTon,
		Source:     types.SourceManual,
	})
	eng := NewEngine(PriceBookResolver{Book: book, SeasonYear: 2026})
	treatment := &types.Treatment{Rate: 1, RateUnit: types.UnitGallon}

	got := eng.PerAcre(treatment, product)
	if !got.Equal(decimal.NewFromInt(4)) {
		t.Errorf("PerAcre = %s, want 4", got)
	}
}

func TestPriceBookSourcePriority(t *testing.T) {
	product := liquidProduct(10, true)
	book := bookWith(
		types.PriceBookEntry{
			SeasonYear: 2026, ProductID: "liq-1",
			Price: decimal.NewFromInt(9), Unit: types.PricePerGallon,
			Source: types.SourceEstimated,
		},
		types.PriceBookEntry{
			SeasonYear: 2026, ProductID: "liq-1",
			Price: decimal.NewFromInt(7), Unit: types.PricePerGallon,
			Source: types.SourceManualOverride,
		},
		types.PriceBookEntry{
			SeasonYear: 2026, ProductID: "liq-1",
			Price: decimal.NewFromInt(8), Unit: types.PricePerGallon,
			Source: types.SourceAwarded,
		},
	)

	entry, ok := book.Resolve(2026, product)
	if !ok {
		t.Fatal("expected a price book match")
	}
	if entry.Source != types.SourceManualOverride {
		t.Errorf("resolved source = %q, want manual_override", entry.Source)
	}
}

func TestSharedSpecMatching(t *testing.T) {
	product := liquidProduct(10, true)
	product.SharedSpecID = "glyphosate-41"
	book := bookWith(types.PriceBookEntry{
		SeasonYear:   2026,
		SharedSpecID: "glyphosate-41",
		Price:        decimal.NewFromInt(6),
		Unit:         types.PricePerGallon,
		Source:       types.SourceAwarded,
	})

	eng := NewEngine(PriceBookResolver{Book: book, SeasonYear: 2026})
	treatment := &types.Treatment{Rate: 1, RateUnit: types.UnitGallon}
	got := eng.PerAcre(treatment, product)
	if !got.Equal(decimal.NewFromInt(6)) {
		t.Errorf("PerAcre via shared spec = %s, want 6", got)
	}
}
