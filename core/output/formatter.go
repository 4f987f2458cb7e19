// Package output renders season and pass reports for humans and
// machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cropcost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable text report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Options controls what the CLI renderer includes
type Options struct {
	// ShowSkipped includes excluded treatments
	ShowSkipped bool

	// ShowFactors includes the intensity factor breakdown
	ShowFactors bool
}

// RenderSeason writes a season summary in the requested format
func RenderSeason(w io.Writer, summary *types.SeasonSummary, format Format, opts Options) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return renderSeasonText(w, summary, opts)
}

func renderSeasonText(w io.Writer, s *types.SeasonSummary, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Season summary: %s (%s, %.0f acres)\n", s.PlanID, s.Crop, s.TotalAcres)
	fmt.Fprintf(&b, "  Total cost:      $%s\n", s.TotalCost.StringFixed(2))
	if !s.SeedCost.IsZero() {
		fmt.Fprintf(&b, "  Seed cost:       $%s\n", s.SeedCost.StringFixed(2))
	}
	fmt.Fprintf(&b, "  Cost per acre:   $%s\n", s.CostPerAcre.StringFixed(2))
	fmt.Fprintf(&b, "  Cost balance:    %s\n", s.Balance)
	fmt.Fprintf(&b, "  Intensity:       %d/5 (%s, score %.2f)\n",
		s.Intensity.Rating, s.Intensity.Label, s.Intensity.Score)

	if opts.ShowFactors {
		for _, f := range s.Intensity.Factors {
			fmt.Fprintf(&b, "    %-15s %.2f x %.1f = %.3f\n", f.Name, f.Value, f.Weight, f.Weighted)
		}
	}

	n := s.Nutrients
	fmt.Fprintf(&b, "  Nutrients (lb):  N %.0f  P %.0f  K %.0f  S %.0f\n",
		n.Nitrogen, n.Phosphate, n.Potash, n.Sulfur)
	fmt.Fprintf(&b, "  N timing:        early %.0f / mid %.0f / late %.0f\n",
		s.NutrientTiming.Early.Nitrogen, s.NutrientTiming.Mid.Nitrogen, s.NutrientTiming.Late.Nitrogen)

	fmt.Fprintf(&b, "  Passes:\n")
	for _, p := range s.Passes {
		name := p.TimingName
		if name == "" {
			name = p.TimingID
		}
		fmt.Fprintf(&b, "    %d. %-20s %-9s $%s  avg coverage %.0f%%\n",
			p.Order, name, p.Pattern, p.TotalCost.StringFixed(2), p.AverageCoverage)
	}

	if opts.ShowSkipped && len(s.Skipped) > 0 {
		fmt.Fprintf(&b, "  Skipped treatments:\n")
		for _, sk := range s.Skipped {
			fmt.Fprintf(&b, "    %s (%s: %s)\n", sk.TreatmentID, sk.Reason, sk.ProductID)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderPasses writes per-pass coverage group detail
func RenderPasses(w io.Writer, passes []types.PassSummary, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(passes)
	}

	var b strings.Builder
	for _, p := range passes {
		name := p.TimingName
		if name == "" {
			name = p.TimingID
		}
		fmt.Fprintf(&b, "Pass %d: %s [%s]\n", p.Order, name, p.Pattern)
		for _, g := range p.Groups {
			fmt.Fprintf(&b, "  %3.0f%% coverage  %d treatment(s)  $%s/treated ac  $%s/field ac  %.0f ac\n",
				g.CoveragePercent, len(g.TreatmentIDs),
				g.CostPerTreatedAcre.StringFixed(2), g.CostPerFieldAcre.StringFixed(2), g.AcresTreated)
		}
		for _, sk := range p.Skipped {
			fmt.Fprintf(&b, "  skipped: %s (%s)\n", sk.TreatmentID, sk.Reason)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
