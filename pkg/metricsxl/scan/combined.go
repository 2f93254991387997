package scan

import "github.com/clinqc/metricsxl/pkg/metricsxl/models"

// ScanCombined evaluates a metric group against its shared specification
// limits. For each sample, every member value is checked; if any member is
// numeric and outside the shared limits, the sample's cell in every member
// row is flagged. Members holding the NA sentinel never count as
// violations. The shared limits are read from the first member row that
// carries a numeric limit at the rule's offsets.
func ScanCombined(g *models.Grid, lay Layout, rule CombinedRule) (*models.HighlightSet, []Warning) {
	hits := models.NewHighlightSet()
	var warns []Warning

	var memberRows []int
	for _, label := range rule.Labels {
		rows := g.LabelRows(label)
		if len(rows) == 0 {
			warns = append(warns, Warning{Kind: WarnMissingMetric, Label: label})
			continue
		}
		memberRows = append(memberRows, rows...)
	}
	if len(memberRows) == 0 {
		return hits, warns
	}

	lsl, usl := models.NA(), models.NA()
	for _, r := range memberRows {
		l, u := g.At(r, rule.LSLOffset), g.At(r, rule.USLOffset)
		if l.IsNumber() || u.IsNumber() {
			lsl, usl = l, u
			break
		}
	}

	for s := lay.SampleStart; s < g.Cols(); s++ {
		violated := false
		for _, r := range memberRows {
			v := g.At(r, s)
			if v.Missing() {
				continue
			}
			if !v.IsNumber() {
				warns = append(warns, Warning{
					Kind:  WarnIncomparable,
					Label: g.At(r, 0).Text,
					Pos:   models.Pos{Row: r, Col: s},
				})
				continue
			}
			if outOfRange(v, lsl, usl) {
				violated = true
			}
		}
		if violated {
			for _, r := range memberRows {
				hits.Add(r, s)
			}
		}
	}
	return hits, warns
}
