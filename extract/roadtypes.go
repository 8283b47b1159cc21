package extract

import (
	"github.com/osmtools/speedlimits/dom"
	"github.com/osmtools/speedlimits/model"
	"github.com/osmtools/speedlimits/tables"
)

// Road-type tables carry four data columns.
const (
	colRoadTypeName = iota
	colFilter
	colFuzzyFilter
	colRelationFilter
)

// RoadTypes extracts the road-type definition table: one entry per data
// row, keyed by the road-type display name. Empty filter cells are omitted
// from the entry; rows without data cells (header rows) are skipped.
func RoadTypes(table dom.Element) map[string]model.RoadType {
	result := make(map[string]model.RoadType)
	grid := tables.NewRowResolver()

	clean := dom.StripDecorations(table)
	for _, row := range clean.Descendants("tr") {
		cells := row.Descendants("td")
		grid.AdvanceRow(cells)
		if len(cells) == 0 {
			continue
		}

		name := cellText(grid, colRoadTypeName)
		result[name] = model.RoadType{
			Filter:         cellText(grid, colFilter),
			FuzzyFilter:    cellText(grid, colFuzzyFilter),
			RelationFilter: cellText(grid, colRelationFilter),
		}
	}

	return result
}

// cellText returns the normalized text of a column, or "" when the table
// has no such column.
func cellText(grid *tables.RowResolver, col int) string {
	cell, ok := grid.Cell(col)
	if !ok {
		return ""
	}
	return cell.Text()
}
