package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"cropcost/core/types"
)

func fixture() (*types.Plan, types.Catalog) {
	quarter := 25.0
	plan := &types.Plan{
		ID:         "plan-2026-corn",
		Crop:       types.CropCorn,
		SeasonYear: 2026,
		TotalAcres: 1000,
		Timings: []types.Timing{
			{ID: "burndown", Name: "Burndown", Order: 1, StageStart: "VE", StageEnd: "V2"},
			{ID: "sidedress", Name: "Sidedress", Order: 2, StageStart: "V6", StageEnd: "V8"},
			{ID: "fungicide", Name: "Fungicide", Order: 3, StageStart: "VT", StageEnd: "R4"},
		},
		Treatments: []types.Treatment{
			{ID: "t1", TimingID: "burndown", ProductID: "herb", Rate: 2, RateUnit: types.UnitGallon},
			{ID: "t2", TimingID: "sidedress", ProductID: "uan", Rate: 10, RateUnit: types.UnitGallon},
			{ID: "t3", TimingID: "fungicide", ProductID: "fung", Rate: 8, RateUnit: types.UnitOunce, CoveragePercent: &quarter},
		},
		SeedTreatments: []types.SeedTreatment{
			{ID: "s1", ProductID: "inoculant", Rate: 0.5, RateUnit: types.UnitPound},
		},
	}
	catalog := types.NewCatalog([]types.Product{
		{ID: "herb", Form: types.FormLiquid, Price: decimal.NewFromInt(10), PriceUnit: types.PricePerGallon, BidEligible: true},
		{ID: "uan", Form: types.FormLiquid, Price: decimal.NewFromInt(2), PriceUnit: types.PricePerGallon,
			Analysis: &types.NutrientAnalysis{Nitrogen: 28}},
		{ID: "fung", Form: types.FormLiquid, Price: decimal.NewFromInt(160), PriceUnit: types.PricePerGallon},
		{ID: "inoculant", Form: types.FormDry, Price: decimal.NewFromInt(4), PriceUnit: types.PricePerPound},
	})
	return plan, catalog
}

func TestBuildSeasonSummaryEndToEnd(t *testing.T) {
	plan, catalog := fixture()
	summary := BuildSeasonSummary(plan, catalog, nil)

	if len(summary.Passes) != 3 {
		t.Fatalf("got %d passes, want 3", len(summary.Passes))
	}

	// Burndown: 2 gal * $10 * 1000ac = 20000.
	// Sidedress: 10 gal * $2 * 1000ac = 20000.
	// Fungicide: 8oz = 1/16 gal * $160 * 250ac = 2500.
	// Seed: 0.5 lb * $4 * 1000ac = 2000.
	want := decimal.NewFromInt(20000 + 20000 + 2500 + 2000)
	if !summary.TotalCost.Equal(want) {
		t.Errorf("TotalCost = %s, want %s", summary.TotalCost, want)
	}
	if !summary.SeedCost.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("SeedCost = %s, want 2000", summary.SeedCost)
	}
	if !summary.CostPerAcre.Equal(decimal.NewFromFloat(44.5)) {
		t.Errorf("CostPerAcre = %s, want 44.5", summary.CostPerAcre)
	}

	// Sidedress UAN: 10 gal * 10 lb/gal * 28% = 28 lb N/ac over 1000 ac.
	if summary.Nutrients.Nitrogen != 28000 {
		t.Errorf("Nitrogen = %v, want 28000", summary.Nutrients.Nitrogen)
	}
	if summary.NutrientTiming.Mid.Nitrogen != 28000 {
		t.Errorf("mid-season N = %v, want 28000", summary.NutrientTiming.Mid.Nitrogen)
	}

	// Fungicide pass lands in corn's late window (VT-R4).
	late := factor(t, summary.Intensity, "late_season")
	if late.Value != 0.5 {
		t.Errorf("late season factor = %v, want 0.5 (1 late pass / 2)", late.Value)
	}

	if len(summary.Skipped) != 0 {
		t.Errorf("unexpected skips: %v", summary.Skipped)
	}
}

func TestBuildSeasonSummaryWithPriceBook(t *testing.T) {
	plan, catalog := fixture()
	book := &types.PriceBook{Entries: []types.PriceBookEntry{
		{SeasonYear: 2026, ProductID: "herb", Price: decimal.NewFromInt(8),
			Unit: types.PricePerGallon, Source: types.SourceAwarded},
	}}

	summary := BuildSeasonSummary(plan, catalog, &PriceContext{Book: book})

	// Burndown drops from 20000 to 16000; only herb is bid eligible.
	want := decimal.NewFromInt(16000 + 20000 + 2500 + 2000)
	if !summary.TotalCost.Equal(want) {
		t.Errorf("TotalCost with price book = %s, want %s", summary.TotalCost, want)
	}
}

func TestDanglingTreatmentExcludedEverywhere(t *testing.T) {
	plan, catalog := fixture()
	plan.Treatments = append(plan.Treatments,
		types.Treatment{ID: "t4", TimingID: "burndown", ProductID: "ghost", Rate: 5, RateUnit: types.UnitGallon})

	with := BuildSeasonSummary(plan, catalog, nil)

	plan.Treatments = plan.Treatments[:3]
	without := BuildSeasonSummary(plan, catalog, nil)

	if !with.TotalCost.Equal(without.TotalCost) {
		t.Errorf("dangling treatment changed totals: %s vs %s", with.TotalCost, without.TotalCost)
	}
	if len(with.Skipped) != 1 || with.Skipped[0].TreatmentID != "t4" {
		t.Errorf("Skipped = %+v, want t4 reported", with.Skipped)
	}
	if with.Skipped[0].Reason != types.SkipMissingProduct {
		t.Errorf("skip reason = %q, want missing_product", with.Skipped[0].Reason)
	}
}

func TestZeroAcreagePlan(t *testing.T) {
	plan, catalog := fixture()
	plan.TotalAcres = 0

	summary := BuildSeasonSummary(plan, catalog, nil)
	if !summary.CostPerAcre.IsZero() {
		t.Errorf("CostPerAcre = %s, want 0 for zero-acre plan", summary.CostPerAcre)
	}
}

func TestBuildSeasonSummaryIsIdempotent(t *testing.T) {
	plan, catalog := fixture()
	first := BuildSeasonSummary(plan, catalog, nil)
	second := BuildSeasonSummary(plan, catalog, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated builds differ (-first +second):\n%s", diff)
	}
}

func TestPassesComeBackInSequenceOrder(t *testing.T) {
	plan, catalog := fixture()
	// Shuffle the declaration order; Order fields must win.
	plan.Timings = []types.Timing{plan.Timings[2], plan.Timings[0], plan.Timings[1]}

	summary := BuildSeasonSummary(plan, catalog, nil)
	for i, p := range summary.Passes {
		if p.Order != i+1 {
			t.Errorf("pass %d has order %d, want %d", i, p.Order, i+1)
		}
	}
}

func factor(t *testing.T, in types.Intensity, name string) types.IntensityFactor {
	t.Helper()
	for _, f := range in.Factors {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("factor %q not found", name)
	return types.IntensityFactor{}
}
