package scan

import "github.com/clinqc/metricsxl/pkg/metricsxl/models"

// ValidateStatus scans the whole grid for the boolean-false marker. Marker
// cells in the layout's status row are returned for flagging; a marker
// anywhere else means the report's structure does not match the assumed
// layout, and the scan aborts with an IntegrityError so the caller can
// discard any produced artifact.
func ValidateStatus(g *models.Grid, lay Layout) (*models.HighlightSet, error) {
	hits := models.NewHighlightSet()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.At(r, c).EqualsText(FalseMarker) {
				continue
			}
			if r != lay.StatusRow {
				return nil, &IntegrityError{Pos: models.Pos{Row: r, Col: c}}
			}
			hits.Add(r, c)
		}
	}
	return hits, nil
}
