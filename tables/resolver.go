package tables

import (
	"github.com/osmtools/speedlimits/dom"
)

// spanCell is one cached column entry: the occupying cell and how many
// rows (including the current one) it still covers.
type spanCell struct {
	remaining int
	cell      dom.Element
}

// RowResolver flattens rowspan/colspan handling for one table. Feed it each
// physical row in order with AdvanceRow, then address cells by logical
// column index with Cell. A cell spanning N rows is visible at its column
// for exactly N consecutive rows starting with its own; a cell spanning N
// columns occupies N consecutive column indices.
//
// A resolver is scoped to a single table traversal: create a fresh one per
// table and do not share it across goroutines.
type RowResolver struct {
	cells map[int]spanCell
}

// NewRowResolver creates an empty resolver.
func NewRowResolver() *RowResolver {
	return &RowResolver{cells: make(map[int]spanCell)}
}

// AdvanceRow moves the resolver to the next physical row. Entries whose
// vertical span ended with the previous row are evicted first, then the
// row's cells are laid out left to right, skipping column indices still
// covered by a span from an earlier row.
//
// AdvanceRow must be called exactly once per physical row, before any Cell
// calls for that row. A row with no cells still counts as one elapsed row.
func (r *RowResolver) AdvanceRow(cells []dom.Element) {
	for col, sc := range r.cells {
		if sc.remaining == 1 {
			delete(r.cells, col)
		} else {
			sc.remaining--
			r.cells[col] = sc
		}
	}

	col := 0
	for _, cell := range cells {
		rowSpan := cell.IntAttr("rowspan", 1)
		if rowSpan < 1 {
			rowSpan = 1
		}
		colSpan := cell.IntAttr("colspan", 1)
		if colSpan < 1 {
			colSpan = 1
		}

		// Skip columns held over from earlier rows by a vertical span.
		for {
			if _, occupied := r.cells[col]; !occupied {
				break
			}
			col++
		}

		for i := 0; i < colSpan; i++ {
			r.cells[col] = spanCell{remaining: rowSpan, cell: cell}
			col++
		}
	}
}

// Cell returns the cell occupying the given column in the current row.
// The second return value is false when no cell has ever covered that
// column, which indicates the caller asked for a column the table does not
// have; callers must not interpret that as an empty cell.
func (r *RowResolver) Cell(col int) (dom.Element, bool) {
	sc, ok := r.cells[col]
	if !ok {
		return nil, false
	}
	return sc.cell, true
}

// Width returns the highest occupied column index plus one for the current
// row, or zero when the row is empty.
func (r *RowResolver) Width() int {
	max := -1
	for col := range r.cells {
		if col > max {
			max = col
		}
	}
	return max + 1
}
