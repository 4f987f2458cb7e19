// Package planfile loads a crop plan document - plan, product catalog,
// and optional price book - from a YAML or JSON file.
// The loader validates structure and value ranges up front; dangling
// product and tier references are left to the engine, which reports them
// in its skip list.
package planfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"cropcost/core/types"
	"cropcost/internal/errors"
)

// Document is one loadable plan file
type Document struct {
	// Plan is the crop plan
	Plan types.Plan `json:"plan"`

	// Products is the product catalog the plan references
	Products []types.Product `json:"products"`

	// PriceBook is the optional season price book
	PriceBook *types.PriceBook `json:"price_book,omitempty"`
}

// Catalog builds the lookup catalog from the document's products
func (d *Document) Catalog() types.Catalog {
	return types.NewCatalog(d.Products)
}

var validate = validator.New()

// Load reads, decodes, defaults, and validates a plan document.
// YAML and JSON are both accepted; the extension decides.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading plan file", err)
	}

	if isYAML(path) {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, errors.Parsing("decoding YAML plan document", err)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Parsing("decoding plan document", err)
	}

	applyDefaults(&doc)
	if err := Validate(&doc); err != nil {
		return nil, errors.Validation("invalid plan document", err)
	}
	return &doc, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// yamlToJSON normalizes YAML input to JSON so one set of field tags
// serves both formats
func yamlToJSON(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// applyDefaults fills identifiers and pass ordering the author omitted
func applyDefaults(doc *Document) {
	if doc.Plan.ID == "" {
		doc.Plan.ID = uuid.NewString()
	}
	for i := range doc.Plan.Timings {
		if doc.Plan.Timings[i].ID == "" {
			doc.Plan.Timings[i].ID = uuid.NewString()
		}
		if doc.Plan.Timings[i].Order == 0 {
			doc.Plan.Timings[i].Order = i + 1
		}
	}
	for i := range doc.Plan.Treatments {
		if doc.Plan.Treatments[i].ID == "" {
			doc.Plan.Treatments[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Plan.SeedTreatments {
		if doc.Plan.SeedTreatments[i].ID == "" {
			doc.Plan.SeedTreatments[i].ID = uuid.NewString()
		}
	}
	if doc.PriceBook != nil {
		for i := range doc.PriceBook.Entries {
			if doc.PriceBook.Entries[i].ID == "" {
				doc.PriceBook.Entries[i].ID = uuid.NewString()
			}
		}
	}
}

// Validate checks value ranges and structural references, aggregating
// every finding instead of stopping at the first
func Validate(doc *Document) error {
	var errs error

	check := func(value interface{}, tag, what string) {
		if err := validate.Var(value, tag); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: must satisfy %q", what, tag))
		}
	}

	check(doc.Plan.TotalAcres, "gte=0", "plan.total_acres")
	check(string(doc.Plan.Crop), "required", "plan.crop")

	for _, tier := range doc.Plan.Tiers {
		check(tier.Name, "required", "tier.name")
		check(tier.Percent, "gte=0,lte=100", fmt.Sprintf("tier %q percent", tier.Name))
	}

	timingIDs := make(map[string]bool, len(doc.Plan.Timings))
	for _, timing := range doc.Plan.Timings {
		timingIDs[timing.ID] = true
	}

	for _, t := range doc.Plan.Treatments {
		check(t.ProductID, "required", fmt.Sprintf("treatment %q product_id", t.ID))
		check(t.Rate, "gte=0", fmt.Sprintf("treatment %q rate", t.ID))
		if t.CoveragePercent != nil {
			check(*t.CoveragePercent, "gte=0,lte=100", fmt.Sprintf("treatment %q coverage_percent", t.ID))
		}
		if !timingIDs[t.TimingID] {
			errs = multierr.Append(errs,
				fmt.Errorf("treatment %q: unknown timing %q", t.ID, t.TimingID))
		}
	}

	for _, s := range doc.Plan.SeedTreatments {
		check(s.ProductID, "required", fmt.Sprintf("seed treatment %q product_id", s.ID))
		check(s.Rate, "gte=0", fmt.Sprintf("seed treatment %q rate", s.ID))
	}

	for _, p := range doc.Products {
		check(p.ID, "required", "product.id")
		check(string(p.Form), "oneof=liquid dry", fmt.Sprintf("product %q form", p.ID))
		check(string(p.PriceUnit), "oneof=gallon pound ton", fmt.Sprintf("product %q price_unit", p.ID))
		if p.Analysis != nil {
			check(p.Analysis.Nitrogen, "gte=0,lte=100", fmt.Sprintf("product %q analysis.n", p.ID))
			check(p.Analysis.Phosphate, "gte=0,lte=100", fmt.Sprintf("product %q analysis.p", p.ID))
			check(p.Analysis.Potash, "gte=0,lte=100", fmt.Sprintf("product %q analysis.k", p.ID))
			check(p.Analysis.Sulfur, "gte=0,lte=100", fmt.Sprintf("product %q analysis.s", p.ID))
		}
	}

	if doc.PriceBook != nil {
		for _, e := range doc.PriceBook.Entries {
			check(e.SeasonYear, "gt=0", fmt.Sprintf("price book entry %q season_year", e.ID))
			check(string(e.Source), "oneof=manual_override manual awarded estimated",
				fmt.Sprintf("price book entry %q source", e.ID))
			if e.ProductID == "" && e.SharedSpecID == "" {
				errs = multierr.Append(errs,
					fmt.Errorf("price book entry %q: needs product_id or shared_spec_id", e.ID))
			}
		}
	}

	return errs
}
