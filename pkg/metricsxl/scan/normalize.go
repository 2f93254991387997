package scan

import "github.com/clinqc/metricsxl/pkg/metricsxl/models"

// ShiftBlock moves the misaligned status block right by the layout's
// shift width, in place. Cells in columns [ShiftCol, cols-ShiftBy) of
// every row in [ShiftTop, ShiftBottom] move to [ShiftCol+ShiftBy, cols);
// the vacated columns become blank. The rightmost ShiftBy columns of the
// block are always blank in a well-formed report, so nothing is lost.
//
// Must run before any scanner reads the grid.
func ShiftBlock(g *models.Grid, lay Layout) error {
	if lay.ShiftTop < 0 || lay.ShiftBottom >= g.Rows() || lay.ShiftTop > lay.ShiftBottom {
		return &LayoutRangeError{Top: lay.ShiftTop, Bottom: lay.ShiftBottom, Rows: g.Rows()}
	}

	for r := lay.ShiftTop; r <= lay.ShiftBottom; r++ {
		for c := g.Cols() - 1; c >= lay.ShiftCol+lay.ShiftBy; c-- {
			g.Set(r, c, g.At(r, c-lay.ShiftBy))
		}
		for c := lay.ShiftCol; c < lay.ShiftCol+lay.ShiftBy && c < g.Cols(); c++ {
			g.Set(r, c, models.Text(""))
		}
	}
	return nil
}
