// Package main provides the CLI entry point for metricsxl.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clinqc/metricsxl/pkg/metricsxl"
	"github.com/clinqc/metricsxl/pkg/metricsxl/loader"
	"github.com/clinqc/metricsxl/pkg/metricsxl/report"
	"github.com/clinqc/metricsxl/pkg/metricsxl/scan"
)

var outputPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "metricsxl [input.tsv]",
		Short: "Convert a QC metrics report to a styled Excel workbook",
		Long: `metricsxl converts a tab-delimited QC metrics report to an Excel
workbook, realigns the analysis-status block with the other tables, and
marks failed status cells and out-of-specification sample values.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "MetricsOutput.xlsx", "Output file path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	grid, err := loader.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	result, err := metricsxl.Check(grid, metricsxl.DefaultConfig())
	if err != nil {
		if errors.Is(err, scan.ErrIntegrity) || errors.Is(err, scan.ErrLayoutRange) {
			// A failed check must leave no artifact behind, including one
			// from an earlier run of the same command.
			if rmErr := os.Remove(outputPath); rmErr != nil && !os.IsNotExist(rmErr) {
				fmt.Fprintf(os.Stderr, "failed to remove %s: %v\n", outputPath, rmErr)
			}
		}
		return fmt.Errorf("check failed: %w", err)
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, yellow("warning: "+w.String()))
	}

	fmt.Printf("Editing excel file %s\n", outputPath)
	if err := report.Write(outputPath, grid, result.Highlights); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Done! %s file generated\n", outputPath)

	return nil
}
