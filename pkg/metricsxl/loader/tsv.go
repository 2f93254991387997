// Package loader reads a delimited metrics report into a grid.
package loader

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/clinqc/metricsxl/pkg/metricsxl/models"
)

// Delimiter separates fields in the source report.
const Delimiter = "\t"

// ReadFile loads a tab-delimited metrics report from disk.
func ReadFile(path string) (*models.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read loads a tab-delimited metrics report. Each field is coerced to a
// number when parseable, the NA sentinel when it is the NA token, and
// text otherwise. Lines are split on the delimiter directly rather than
// through encoding/csv: the report's row positions are structural, and
// csv readers drop the blank separator lines between tables. Records may
// have differing field counts; the resulting grid is padded rectangular.
func Read(r io.Reader) (*models.Grid, error) {
	var rows [][]models.CellValue

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		fields := strings.Split(line, Delimiter)
		row := make([]models.CellValue, len(fields))
		for i, field := range fields {
			row[i] = models.Coerce(field)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return models.NewGrid(rows), nil
}
