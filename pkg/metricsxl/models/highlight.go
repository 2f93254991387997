package models

import "sort"

// Pos is a zero-based (row, column) cell position.
type Pos struct {
	// Row is the row index (0-based).
	Row int
	// Col is the column index (0-based).
	Col int
}

// HighlightSet accumulates the cell positions to visually mark. Adding a
// position already present is a no-op, so scanner passes can overlap.
type HighlightSet struct {
	members map[Pos]struct{}
}

// NewHighlightSet returns an empty highlight set.
func NewHighlightSet() *HighlightSet {
	return &HighlightSet{members: make(map[Pos]struct{})}
}

// Add records a position to be marked.
func (h *HighlightSet) Add(row, col int) {
	h.members[Pos{Row: row, Col: col}] = struct{}{}
}

// Has reports whether a position is marked.
func (h *HighlightSet) Has(row, col int) bool {
	_, ok := h.members[Pos{Row: row, Col: col}]
	return ok
}

// Len returns the number of marked positions.
func (h *HighlightSet) Len() int {
	return len(h.members)
}

// Merge adds every position of other into h.
func (h *HighlightSet) Merge(other *HighlightSet) {
	for p := range other.members {
		h.members[p] = struct{}{}
	}
}

// Positions returns the marked positions in row-major order.
func (h *HighlightSet) Positions() []Pos {
	result := make([]Pos, 0, len(h.members))
	for p := range h.members {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Row != result[j].Row {
			return result[i].Row < result[j].Row
		}
		return result[i].Col < result[j].Col
	})
	return result
}
