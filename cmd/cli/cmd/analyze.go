// Package cmd - analyze command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cropcost/adapters/planfile"
	"cropcost/core/engine"
	"cropcost/core/output"
	"cropcost/internal/config"
	"cropcost/internal/logging"
)

var (
	outputFormat string
	farmAvgCost  float64
	showFactors  bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <plan-file>",
	Short: "Build the season summary for a crop plan",
	Long: `Analyze a plan document and print the season report: total and
per-acre cost, nutrient delivery and timing split, cost balance, and the
program intensity rating.

Examples:
  cropcost analyze plan.yaml
  cropcost analyze --format json plan.yaml
  cropcost analyze --farm-avg 120 plan.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	analyzeCmd.Flags().Float64Var(&farmAvgCost, "farm-avg", 0, "farm average cost per acre baseline")
	analyzeCmd.Flags().BoolVar(&showFactors, "factors", false, "show the intensity factor breakdown")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	doc, err := planfile.Load(args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	engCfg := engineConfig(cfg)
	if cmd.Flags().Changed("farm-avg") {
		engCfg.FarmAvgCostPerAcre = &farmAvgCost
	}

	logging.Debug("building season summary",
		zap.String("plan", doc.Plan.ID),
		zap.Int("treatments", len(doc.Plan.Treatments)))

	summary := engine.BuildSeasonSummaryWith(&doc.Plan, doc.Catalog(), priceContext(doc), engCfg)

	if len(summary.Skipped) > 0 {
		logging.Warn("treatments excluded from totals", zap.Int("count", len(summary.Skipped)))
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	opts := output.Options{
		ShowSkipped: cfg.Output.ShowSkipped,
		ShowFactors: showFactors || cfg.Output.ShowFactors,
	}
	if err := output.RenderSeason(os.Stdout, &summary, format, opts); err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}
	return nil
}

// engineConfig assembles engine configuration from the app config
func engineConfig(cfg *config.Config) engine.Config {
	return engine.Config{
		Bands:              cfg.Engine.Bands,
		Thresholds:         cfg.Engine.Thresholds,
		FarmAvgCostPerAcre: cfg.Engine.FarmAvgCostPerAcre,
	}
}

// priceContext enables price-book costing when the document carries one
func priceContext(doc *planfile.Document) *engine.PriceContext {
	if doc.PriceBook == nil {
		return nil
	}
	return &engine.PriceContext{Book: doc.PriceBook, SeasonYear: doc.Plan.SeasonYear}
}
