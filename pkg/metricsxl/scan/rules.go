// Package scan implements the QC checks that run over a loaded metrics grid:
// block realignment, status-marker validation, and threshold evaluation.
package scan

// Layout describes the fixed positions the source report is expected to
// follow. All indices are 0-based.
type Layout struct {
	// ShiftTop and ShiftBottom bound the misaligned status block
	// (inclusive) that must move right to line up with the other tables.
	ShiftTop    int
	ShiftBottom int
	// ShiftCol is the first column of the block to move.
	ShiftCol int
	// ShiftBy is the number of columns the block moves right.
	ShiftBy int
	// StatusRow is the only row where the boolean-false marker may appear.
	StatusRow int
	// SampleStart is the first sample column; every column from here to
	// the right edge holds one sample's measurements.
	SampleStart int
}

// MetricRule configures one single-metric threshold check. The metric's
// row is located by exact label match in column 0; its lower and upper
// specification limits sit at fixed offsets from the label column. Either
// limit may be the NA sentinel, turning the check one-sided.
type MetricRule struct {
	Label     string
	LSLOffset int
	USLOffset int
}

// CombinedRule configures a group of metrics evaluated against one shared
// limit pair: if any member's value falls outside the limits, every
// member's cell for that sample is flagged together.
type CombinedRule struct {
	Labels    []string
	LSLOffset int
	USLOffset int
}

// FalseMarker is the boolean-false marker text as spelled in the report.
const FalseMarker = "FALSE"

// DefaultLayout returns the layout of a standard metrics report: the
// analysis-status block occupies rows 16-19 (1-based) and is emitted two
// columns left of the other tables, FALSE may appear only in row 17, and
// sample columns start after the label and limit columns.
func DefaultLayout() Layout {
	return Layout{
		ShiftTop:    15,
		ShiftBottom: 18,
		ShiftCol:    1,
		ShiftBy:     2,
		StatusRow:   16,
		SampleStart: 3,
	}
}

// DefaultRules returns the library QC metrics checked against their own
// limit pairs.
func DefaultRules() []MetricRule {
	labels := []string{
		"MEDIAN_INSERT_SIZE (bp)",
		"MEDIAN_EXON_COVERAGE (Count)",
		"PCT_EXON_50X (%)",
		"USABLE_MSI_SITES (Count)",
		"COVERAGE_MAD (Count)",
		"MEDIAN_BIN_COUNT_CNV_TARGET (Count)",
		"MEDIAN_CV_GENE_500X (%)",
		"TOTAL_ON_TARGET_READS (Count)",
		"MEDIAN_INSERT_SIZE (Count)",
	}
	rules := make([]MetricRule, len(labels))
	for i, label := range labels {
		rules[i] = MetricRule{Label: label, LSLOffset: 1, USLOffset: 2}
	}
	return rules
}

// DefaultCombinedRule returns the contamination group: score and p-value
// share one limit pair and are flagged together.
func DefaultCombinedRule() CombinedRule {
	return CombinedRule{
		Labels: []string{
			"CONTAMINATION_SCORE (NA)",
			"CONTAMINATION_P_VALUE (NA)",
		},
		LSLOffset: 1,
		USLOffset: 2,
	}
}
