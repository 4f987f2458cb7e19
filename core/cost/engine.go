// Package cost computes a treatment's cost per covered acre.
// One parametrized engine serves every pricing mode; the mode is an
// injectable price-resolution capability, so catalog and price-book
// calculations cannot drift apart.
package cost

import (
	"github.com/shopspring/decimal"

	"cropcost/core/types"
	"cropcost/core/units"
)

// poundsPerTon converts per-ton prices to per-pound prices
var poundsPerTon = decimal.NewFromInt(2000)

// ResolvedPrice is a unit price selected by a resolver
type ResolvedPrice struct {
	// Price is the unit price
	Price decimal.Decimal `json:"price"`

	// Unit is the unit Price is quoted in
	Unit types.PriceUnit `json:"unit"`

	// Source tags where the price came from (empty for catalog prices)
	Source types.PriceSource `json:"source,omitempty"`
}

// Resolver selects the unit price to charge for a product
type Resolver interface {
	// Resolve returns the price to use for a product
	Resolve(p *types.Product) ResolvedPrice
}

// CatalogResolver always charges the product's static catalog price
type CatalogResolver struct{}

// Resolve returns the catalog price
func (CatalogResolver) Resolve(p *types.Product) ResolvedPrice {
	return ResolvedPrice{Price: p.Price, Unit: p.PriceUnit}
}

// PriceBookResolver substitutes a season's negotiated price for
// bid-eligible products, falling back to the catalog price when the book
// has no matching entry.
type PriceBookResolver struct {
	// Book is the price book to consult
	Book *types.PriceBook

	// SeasonYear scopes the lookup
	SeasonYear int
}

// Resolve returns the book price for an eligible product, else the
// catalog price
func (r PriceBookResolver) Resolve(p *types.Product) ResolvedPrice {
	if !p.BidEligible {
		return CatalogResolver{}.Resolve(p)
	}
	entry, ok := r.Book.Resolve(r.SeasonYear, p)
	if !ok {
		return CatalogResolver{}.Resolve(p)
	}
	return ResolvedPrice{Price: entry.Price, Unit: entry.Unit, Source: entry.Source}
}

// Engine computes per-acre treatment cost with an injected price resolver
type Engine struct {
	resolver Resolver
}

// NewEngine creates a cost engine. A nil resolver means catalog pricing.
func NewEngine(r Resolver) Engine {
	if r == nil {
		r = CatalogResolver{}
	}
	return Engine{resolver: r}
}

// PerAcre computes the treatment's cost per covered acre.
// Liquid products: gallons per acre times the per-gallon price; a
// per-weight price is converted to per-gallon through the product's
// density. Dry products: pounds per acre times the per-pound price, with
// per-ton prices divided by 2000.
func (e Engine) PerAcre(t *types.Treatment, p *types.Product) decimal.Decimal {
	return e.rateCost(t.Rate, t.RateUnit, p)
}

// SeedPerAcre computes a seed treatment's cost per planted acre
func (e Engine) SeedPerAcre(s *types.SeedTreatment, p *types.Product) decimal.Decimal {
	return e.rateCost(s.Rate, s.RateUnit, p)
}

func (e Engine) rateCost(rate float64, unit types.RateUnit, p *types.Product) decimal.Decimal {
	resolved := e.resolver.Resolve(p)
	if p.Form == types.FormLiquid {
		gal := units.GallonsPerAcre(rate, unit)
		return decimal.NewFromFloat(gal).Mul(perGallon(resolved, p))
	}
	lbs := units.PoundsPerAcre(rate, unit)
	return decimal.NewFromFloat(lbs).Mul(perPound(resolved))
}

// perGallon normalizes a resolved price for a liquid product.
// Per-gallon prices apply directly; per-weight prices are converted
// through the product's density in pounds per gallon.
func perGallon(r ResolvedPrice, p *types.Product) decimal.Decimal {
	if r.Unit == types.PricePerGallon {
		return r.Price
	}
	return perPound(r).Mul(decimal.NewFromFloat(p.Density()))
}

// perPound normalizes a resolved price for weight-based accounting.
// Anything not quoted per ton is treated as already per pound.
func perPound(r ResolvedPrice) decimal.Decimal {
	if r.Unit == types.PricePerTon {
		return r.Price.Div(poundsPerTon)
	}
	return r.Price
}
