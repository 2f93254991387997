// Package metricsxl checks a QC metrics report grid: it realigns the
// misplaced status block, validates the boolean-status markers, and
// evaluates every sample against the configured specification limits.
package metricsxl

import (
	"github.com/clinqc/metricsxl/pkg/metricsxl/models"
	"github.com/clinqc/metricsxl/pkg/metricsxl/scan"
)

// Config carries the layout and rule tables driving a check.
type Config struct {
	// Layout fixes the report's structural positions.
	Layout scan.Layout
	// Rules are the single-metric threshold checks.
	Rules []scan.MetricRule
	// Combined is the shared-limit metric group.
	Combined scan.CombinedRule
}

// DefaultConfig returns the configuration for a standard metrics report.
func DefaultConfig() Config {
	return Config{
		Layout:   scan.DefaultLayout(),
		Rules:    scan.DefaultRules(),
		Combined: scan.DefaultCombinedRule(),
	}
}

// Result is the outcome of a completed check.
type Result struct {
	// Highlights are the cell positions to visually mark.
	Highlights *models.HighlightSet
	// Warnings are the non-fatal findings collected across all passes.
	Warnings []scan.Warning
}

// Check normalizes the grid in place, then runs the status, threshold,
// and combined-metric passes over it, merging each pass's positions into
// one highlight set. The grid is mutated once, by the normalization; the
// scan passes only read it.
//
// A scan.IntegrityError or scan.LayoutRangeError aborts the check; the
// caller must not keep any output artifact in that case.
func Check(g *models.Grid, cfg Config) (*Result, error) {
	if err := scan.ShiftBlock(g, cfg.Layout); err != nil {
		return nil, err
	}

	highlights := models.NewHighlightSet()
	var warnings []scan.Warning

	statusHits, err := scan.ValidateStatus(g, cfg.Layout)
	if err != nil {
		return nil, err
	}
	highlights.Merge(statusHits)

	hits, warns := scan.ScanThresholds(g, cfg.Layout, cfg.Rules)
	highlights.Merge(hits)
	warnings = append(warnings, warns...)

	hits, warns = scan.ScanCombined(g, cfg.Layout, cfg.Combined)
	highlights.Merge(hits)
	warnings = append(warnings, warns...)

	return &Result{Highlights: highlights, Warnings: warnings}, nil
}
