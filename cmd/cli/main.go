// Package main is the entry point for the cropcost CLI.
package main

import (
	"os"

	"cropcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
