package scan

import (
	"errors"
	"fmt"

	"github.com/clinqc/metricsxl/pkg/metricsxl/models"
)

// ErrIntegrity indicates the boolean-status marker was found outside the
// designated status row.
var ErrIntegrity = errors.New("status marker outside designated row")

// ErrLayoutRange indicates the configured shift range does not fit the grid.
var ErrLayoutRange = errors.New("shift range outside grid")

// IntegrityError reports a boolean-status marker at an unexpected position.
// It is fatal: the report's structure does not match the layout the checks
// assume, so any produced artifact must be discarded by the caller.
type IntegrityError struct {
	Pos models.Pos
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: found at row %d, column %d", ErrIntegrity, e.Pos.Row+1, e.Pos.Col+1)
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}

// LayoutRangeError reports a block shift that would fall outside the grid.
type LayoutRangeError struct {
	Top, Bottom int
	Rows        int
}

func (e *LayoutRangeError) Error() string {
	return fmt.Sprintf("%s: rows %d-%d requested, grid has %d", ErrLayoutRange, e.Top, e.Bottom, e.Rows)
}

func (e *LayoutRangeError) Unwrap() error {
	return ErrLayoutRange
}

// WarningKind classifies non-fatal findings surfaced during a scan.
type WarningKind int

const (
	// WarnMissingMetric means a configured metric label matched no row.
	WarnMissingMetric WarningKind = iota
	// WarnIncomparable means a sample cell held text that is neither the
	// NA sentinel nor blank, so it could not be range-checked.
	WarnIncomparable
)

// Warning is a non-fatal finding. The run continues; the caller decides
// how to surface it.
type Warning struct {
	Kind  WarningKind
	Label string
	Pos   models.Pos
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnMissingMetric:
		return fmt.Sprintf("metric %q not found in report", w.Label)
	default:
		return fmt.Sprintf("metric %q: value at row %d, column %d is not numeric, skipped",
			w.Label, w.Pos.Row+1, w.Pos.Col+1)
	}
}
