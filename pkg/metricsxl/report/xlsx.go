// Package report writes the checked metrics grid to a styled workbook.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/clinqc/metricsxl/pkg/metricsxl/models"
)

// SheetName is the name given to the workbook's single sheet.
const SheetName = "MetricsOutput"

// Alert style applied to highlighted cells.
const (
	alertFillColor = "FFC7CE"
	alertFontColor = "9C0006"
	alertFontName  = "Calibri"
)

// Write builds a single-sheet workbook from the grid, applies the alert
// style to every highlighted position, and saves it to path. Blank cells
// stay unset so the sheet mirrors the source report's empty fields.
func Write(path string, g *models.Grid, highlights *models.HighlightSet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.At(r, c)
			if v.Kind == models.KindText && v.Text == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			switch v.Kind {
			case models.KindNumber:
				err = f.SetCellValue(SheetName, cell, v.Num)
			case models.KindNA:
				err = f.SetCellValue(SheetName, cell, models.NAToken)
			default:
				err = f.SetCellValue(SheetName, cell, v.Text)
			}
			if err != nil {
				return err
			}
		}
	}

	if err := applyAlerts(f, highlights); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// applyAlerts marks every highlighted position with the alert fill and
// font. Marking is idempotent and order-independent.
func applyAlerts(f *excelize.File, highlights *models.HighlightSet) error {
	if highlights == nil || highlights.Len() == 0 {
		return nil
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{alertFillColor}},
		Font: &excelize.Font{Family: alertFontName, Color: alertFontColor},
	})
	if err != nil {
		return fmt.Errorf("failed to create alert style: %w", err)
	}

	for _, p := range highlights.Positions() {
		cell, err := excelize.CoordinatesToCellName(p.Col+1, p.Row+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, styleID); err != nil {
			return err
		}
	}
	return nil
}
