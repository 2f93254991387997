package scan

import "github.com/clinqc/metricsxl/pkg/metricsxl/models"

// ScanThresholds evaluates every sample against each rule's specification
// limits and returns the violating cell positions. A missing limit makes
// the check one-sided; a sample equal to a limit is in range. Metrics
// whose label matches no row, and sample cells that are non-blank text,
// are reported as warnings rather than aborting the scan.
func ScanThresholds(g *models.Grid, lay Layout, rules []MetricRule) (*models.HighlightSet, []Warning) {
	hits := models.NewHighlightSet()
	var warns []Warning

	for _, rule := range rules {
		rows := g.LabelRows(rule.Label)
		if len(rows) == 0 {
			warns = append(warns, Warning{Kind: WarnMissingMetric, Label: rule.Label})
			continue
		}
		for _, r := range rows {
			lsl := g.At(r, rule.LSLOffset)
			usl := g.At(r, rule.USLOffset)
			for s := lay.SampleStart; s < g.Cols(); s++ {
				v := g.At(r, s)
				if v.Missing() {
					continue
				}
				if !v.IsNumber() {
					warns = append(warns, Warning{
						Kind:  WarnIncomparable,
						Label: rule.Label,
						Pos:   models.Pos{Row: r, Col: s},
					})
					continue
				}
				if outOfRange(v, lsl, usl) {
					hits.Add(r, s)
				}
			}
		}
	}
	return hits, warns
}

// outOfRange reports whether a numeric sample value falls outside [lsl, usl].
// A non-numeric limit does not constrain that side; the boundary values
// themselves are in range.
func outOfRange(v, lsl, usl models.CellValue) bool {
	if below, ok := v.Less(lsl); ok && below {
		return true
	}
	if above, ok := v.Greater(usl); ok && above {
		return true
	}
	return false
}
