// Package cmd - passes command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cropcost/adapters/planfile"
	"cropcost/core/engine"
	"cropcost/core/output"
	"cropcost/internal/config"
)

// passesCmd represents the passes command
var passesCmd = &cobra.Command{
	Use:   "passes <plan-file>",
	Short: "Show per-pass coverage groups and patterns",
	Args:  cobra.ExactArgs(1),
	RunE:  runPasses,
}

func init() {
	passesCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runPasses(cmd *cobra.Command, args []string) error {
	doc, err := planfile.Load(args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	summary := engine.BuildSeasonSummaryWith(&doc.Plan, doc.Catalog(), priceContext(doc), engineConfig(cfg))

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	if err := output.RenderPasses(os.Stdout, summary.Passes, format); err != nil {
		return fmt.Errorf("rendering passes: %w", err)
	}
	return nil
}
