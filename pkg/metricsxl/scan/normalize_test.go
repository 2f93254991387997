package scan

import (
	"errors"
	"testing"

	"github.com/clinqc/metricsxl/pkg/metricsxl/models"
)

// mkGrid builds a grid from raw source fields, coerced the way the
// loader coerces them.
func mkGrid(rows [][]string) *models.Grid {
	converted := make([][]models.CellValue, len(rows))
	for i, row := range rows {
		converted[i] = make([]models.CellValue, len(row))
		for j, field := range row {
			converted[i][j] = models.Coerce(field)
		}
	}
	return models.NewGrid(converted)
}

func TestShiftBlock(t *testing.T) {
	g := mkGrid([][]string{
		{"keep", "1", "2", "3", "4"},
		{"label", "a", "b", "", ""},
		{"keep", "5", "6", "7", "8"},
	})
	lay := Layout{ShiftTop: 1, ShiftBottom: 1, ShiftCol: 1, ShiftBy: 2}

	if err := ShiftBlock(g, lay); err != nil {
		t.Fatalf("ShiftBlock failed: %v", err)
	}

	// Shifted row: label stays, data moved right by two, vacated blank.
	if got := g.At(1, 0); got != models.Text("label") {
		t.Errorf("label cell = %#v, expected unchanged", got)
	}
	if got := g.At(1, 3); got != models.Text("a") {
		t.Errorf("At(1, 3) = %#v, expected Text(\"a\")", got)
	}
	if got := g.At(1, 4); got != models.Text("b") {
		t.Errorf("At(1, 4) = %#v, expected Text(\"b\")", got)
	}
	for c := 1; c <= 2; c++ {
		if got := g.At(1, c); got != models.Text("") {
			t.Errorf("vacated At(1, %d) = %#v, expected blank", c, got)
		}
	}

	// Other rows untouched.
	if got := g.At(0, 1); got != models.Number(1) {
		t.Errorf("At(0, 1) = %#v, expected Number(1)", got)
	}
	if got := g.At(2, 4); got != models.Number(8) {
		t.Errorf("At(2, 4) = %#v, expected Number(8)", got)
	}
}

func TestShiftBlockSameShapeIsStable(t *testing.T) {
	rows := [][]string{
		{"h", "x", "y", "z", "w"},
		{"label", "a", "b", "", ""},
	}
	lay := Layout{ShiftTop: 1, ShiftBottom: 1, ShiftCol: 1, ShiftBy: 2}

	once := mkGrid(rows)
	if err := ShiftBlock(once, lay); err != nil {
		t.Fatalf("first shift failed: %v", err)
	}

	// An already-normalized shape of identical dimensions shifts to the
	// same result: moved right by exactly ShiftBy, vacated columns blank.
	again := mkGrid([][]string{
		{"h", "x", "y", "z", "w"},
		{"label", "", "", "a", "b"},
	})
	if err := ShiftBlock(again, lay); err != nil {
		t.Fatalf("second shift failed: %v", err)
	}
	if got := again.At(1, 3); got != models.Text("") {
		t.Errorf("At(1, 3) = %#v, expected blank after re-shift", got)
	}
}

func TestShiftBlockRangeError(t *testing.T) {
	g := mkGrid([][]string{{"only", "row"}})
	lay := Layout{ShiftTop: 15, ShiftBottom: 18, ShiftCol: 1, ShiftBy: 2}

	err := ShiftBlock(g, lay)
	if !errors.Is(err, ErrLayoutRange) {
		t.Fatalf("expected ErrLayoutRange, got %v", err)
	}
	var rangeErr *LayoutRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatal("expected *LayoutRangeError")
	}
	if rangeErr.Rows != 1 {
		t.Errorf("Rows = %d, expected 1", rangeErr.Rows)
	}
}
