package nutrient

import (
	"math"
	"testing"

	"cropcost/core/types"
)

func TestDryDelivery(t *testing.T) {
	// Urea: 100 lb/ac at 46-0-0 delivers exactly 46 lb N/ac.
	urea := &types.Product{
		Form:     types.FormDry,
		Analysis: &types.NutrientAnalysis{Nitrogen: 46},
	}
	got := Delivery(100, types.UnitPound, urea)
	if got.Nitrogen != 46 {
		t.Errorf("Nitrogen = %v, want exactly 46", got.Nitrogen)
	}
	if got.Phosphate != 0 || got.Potash != 0 || got.Sulfur != 0 {
		t.Errorf("unexpected non-nitrogen delivery: %+v", got)
	}
}

func TestLiquidDeliveryUsesDensity(t *testing.T) {
	// 28% UAN at 11 lb/gal: 3 gal/ac delivers 33 lb product, 9.24 lb N.
	density := 11.0
	uan := &types.Product{
		Form:             types.FormLiquid,
		DensityLbsPerGal: &density,
		Analysis:         &types.NutrientAnalysis{Nitrogen: 28},
	}
	got := Delivery(3, types.UnitGallon, uan)
	if math.Abs(got.Nitrogen-9.24) > 1e-9 {
		t.Errorf("Nitrogen = %v, want 9.24", got.Nitrogen)
	}
}

func TestLiquidDeliveryDefaultDensity(t *testing.T) {
	// Unspecified density defaults to 10 lb/gal.
	product := &types.Product{
		Form:     types.FormLiquid,
		Analysis: &types.NutrientAnalysis{Sulfur: 10},
	}
	got := Delivery(1, types.UnitGallon, product)
	if got.Sulfur != 1 {
		t.Errorf("Sulfur = %v, want 1 (10 lb product at 10%%)", got.Sulfur)
	}
}

func TestNoAnalysisDeliversZeroVector(t *testing.T) {
	herbicide := &types.Product{Form: types.FormLiquid}
	if got := Delivery(2, types.UnitGallon, herbicide); !got.IsZero() {
		t.Errorf("Delivery without analysis = %+v, want zero vector", got)
	}
}

func TestDryRateUnitConversion(t *testing.T) {
	product := &types.Product{
		Form:     types.FormDry,
		Analysis: &types.NutrientAnalysis{Potash: 60},
	}
	// Half a ton of 0-0-60 is 600 lb K2O.
	got := Delivery(0.5, types.UnitTon, product)
	if got.Potash != 600 {
		t.Errorf("Potash = %v, want 600", got.Potash)
	}
}
