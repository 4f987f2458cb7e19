// Package types - Product catalog types
package types

import "github.com/shopspring/decimal"

// DefaultLiquidDensity is the assumed density of a liquid product, in
// pounds per gallon, when the catalog does not specify one.
const DefaultLiquidDensity = 10.0

// Product is a catalog entry for an input product
type Product struct {
	// ID uniquely identifies the product
	ID string `json:"id"`

	// Name is the commercial product name
	Name string `json:"name,omitempty"`

	// Form indicates liquid or dry
	Form ProductForm `json:"form"`

	// Price is the catalog unit price
	Price decimal.Decimal `json:"price"`

	// PriceUnit is the unit Price is quoted in
	PriceUnit PriceUnit `json:"price_unit"`

	// DensityLbsPerGal is the liquid density in pounds per gallon.
	// Nil means DefaultLiquidDensity for liquid products.
	DensityLbsPerGal *float64 `json:"density_lbs_per_gal,omitempty"`

	// Analysis is the guaranteed nutrient analysis. Nil means the product
	// delivers no tracked nutrients.
	Analysis *NutrientAnalysis `json:"analysis,omitempty"`

	// BidEligible permits sourcing this product's price from the price
	// book instead of the catalog price
	BidEligible bool `json:"bid_eligible,omitempty"`

	// SharedSpecID links the product to a shared commodity spec shared by
	// interchangeable products, used for price-book matching
	SharedSpecID string `json:"shared_spec_id,omitempty"`
}

// Density returns the liquid density in pounds per gallon, applying the
// default when unspecified
func (p *Product) Density() float64 {
	if p.DensityLbsPerGal != nil && *p.DensityLbsPerGal > 0 {
		return *p.DensityLbsPerGal
	}
	return DefaultLiquidDensity
}

// NutrientAnalysis is a product's guaranteed analysis: the percentage of
// product mass delivered as each tracked nutrient. Each value is in [0,100].
type NutrientAnalysis struct {
	// Nitrogen percentage (N)
	Nitrogen float64 `json:"n"`

	// Phosphate percentage (P2O5)
	Phosphate float64 `json:"p"`

	// Potash percentage (K2O)
	Potash float64 `json:"k"`

	// Sulfur percentage (S)
	Sulfur float64 `json:"s"`
}

// Nutrients is a delivered nutrient mass vector, in pounds per acre or
// pounds total depending on context
type Nutrients struct {
	Nitrogen  float64 `json:"n"`
	Phosphate float64 `json:"p"`
	Potash    float64 `json:"k"`
	Sulfur    float64 `json:"s"`
}

// Add returns the element-wise sum of two nutrient vectors
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Nitrogen:  n.Nitrogen + o.Nitrogen,
		Phosphate: n.Phosphate + o.Phosphate,
		Potash:    n.Potash + o.Potash,
		Sulfur:    n.Sulfur + o.Sulfur,
	}
}

// Scale returns the vector multiplied by a scalar
func (n Nutrients) Scale(f float64) Nutrients {
	return Nutrients{
		Nitrogen:  n.Nitrogen * f,
		Phosphate: n.Phosphate * f,
		Potash:    n.Potash * f,
		Sulfur:    n.Sulfur * f,
	}
}

// IsZero reports whether every component is zero
func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}

// Catalog is a product catalog looked up by product id
type Catalog map[string]*Product

// Lookup returns the product for an id
func (c Catalog) Lookup(id string) (*Product, bool) {
	p, ok := c[id]
	return p, ok
}

// NewCatalog builds a catalog from a product list
func NewCatalog(products []Product) Catalog {
	c := make(Catalog, len(products))
	for i := range products {
		c[products[i].ID] = &products[i]
	}
	return c
}
