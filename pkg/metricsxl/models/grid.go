package models

// Grid is a zero-based, row-major table of cell values. Rows may have been
// loaded ragged from the source report; the grid pads them to a uniform
// column count so positional logic can assume a rectangle.
type Grid struct {
	rows [][]CellValue
	cols int
}

// NewGrid builds a rectangular grid from loaded rows, padding short rows
// with empty text. Padding is empty text rather than the NA sentinel so
// blank source cells stay blank in the written artifact; both read as
// missing to the scanners.
func NewGrid(rows [][]CellValue) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	padded := make([][]CellValue, len(rows))
	for i, r := range rows {
		row := make([]CellValue, cols)
		copy(row, r)
		for c := len(r); c < cols; c++ {
			row[c] = Text("")
		}
		padded[i] = row
	}
	return &Grid{rows: padded, cols: cols}
}

// Rows returns the row count.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the column count.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the value at (row, col). Out-of-range positions read as the
// NA sentinel.
func (g *Grid) At(row, col int) CellValue {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.cols {
		return NA()
	}
	return g.rows[row][col]
}

// Set writes the value at (row, col). Out-of-range positions are ignored.
func (g *Grid) Set(row, col int, v CellValue) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.cols {
		return
	}
	g.rows[row][col] = v
}

// LabelRows returns the indices of every row whose first column is text
// exactly equal to label.
func (g *Grid) LabelRows(label string) []int {
	var result []int
	for r := range g.rows {
		if g.At(r, 0).EqualsText(label) {
			result = append(result, r)
		}
	}
	return result
}
