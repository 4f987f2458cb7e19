// Package cmd - version command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, set via -ldflags at release time
var (
	version = "dev"
	commit  = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cropcost %s (%s)\n", version, commit)
	},
}
