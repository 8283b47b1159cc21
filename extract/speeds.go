package extract

import (
	"github.com/osmtools/speedlimits/dom"
	"github.com/osmtools/speedlimits/jurisdiction"
	"github.com/osmtools/speedlimits/model"
	"github.com/osmtools/speedlimits/tables"
)

// ParseFunc converts the free text of one speed cell ("50", "50; trucks 30")
// into provisional tag pairs. It is treated as an opaque collaborator: any
// error it returns degrades to an empty tag contribution plus a warning.
type ParseFunc func(text string) (map[string]string, error)

// Speed tables lead with the jurisdiction and road-type columns; vehicle
// type columns start after them.
const (
	colJurisdiction = iota
	colRoadType
	colFirstVehicle
)

// SpeedTable extracts one per-country speed table. Column headers carry
// forward across header rows: the first header row seeds the column names
// (colspan expanded), later header rows overwrite only columns whose new
// header text is non-empty. Each data row resolves its jurisdiction display
// name to a code and parses every populated vehicle column, rewriting the
// produced tag keys by vehicle type. Rows whose jurisdiction cannot be
// resolved are skipped whole, with a warning.
func SpeedTable(table dom.Element, parse ParseFunc, resolver *jurisdiction.Resolver) model.SpeedTableResult {
	result := model.SpeedTableResult{
		SpeedLimitsByCountryCode: make(map[string][]model.SpeedEntry),
	}

	var columnNames []string
	grid := tables.NewRowResolver()

	clean := dom.StripDecorations(table)
	for _, row := range clean.Descendants("tr") {
		if headers := row.Descendants("th"); len(headers) > 0 {
			columnNames = mergeHeaderRow(columnNames, headers)
		}

		cells := row.Descendants("td")
		grid.AdvanceRow(cells)
		if len(cells) == 0 {
			continue
		}

		name := cellText(grid, colJurisdiction)
		code, ok := resolver.Resolve(name)
		if !ok {
			result.Warnings = append(result.Warnings,
				model.Warningf("%s: Unknown country / subdivision", name))
			continue
		}

		roadType := cellText(grid, colRoadType)

		tags := make(map[string]string)
		for col := colFirstVehicle; col < len(columnNames); col++ {
			cell, ok := grid.Cell(col)
			if !ok {
				continue
			}
			text := cell.Text()
			if text == "" {
				continue
			}

			vehicle := columnNames[col]
			parsed, err := parse(text)
			if err != nil {
				result.Warnings = append(result.Warnings,
					model.Warningf("%s: Unable to parse '%s' for '%s'", name, vehicle, roadType))
				continue
			}
			for key, value := range parsed {
				tags[rewriteKey(key, vehicle)] = value
			}
		}

		result.SpeedLimitsByCountryCode[code] = append(
			result.SpeedLimitsByCountryCode[code],
			model.SpeedEntry{Tags: tags, Name: roadType},
		)
	}

	return result
}

// mergeHeaderRow folds one physical header row into the effective column
// name list. The first header row establishes the list; subsequent rows
// only overwrite positions where the new header text is non-empty, so a
// revision row does not blank the columns it leaves merged or empty.
func mergeHeaderRow(columnNames []string, headers []dom.Element) []string {
	if len(columnNames) == 0 {
		for _, th := range headers {
			text := th.Text()
			span := th.IntAttr("colspan", 1)
			if span < 1 {
				span = 1
			}
			for i := 0; i < span; i++ {
				columnNames = append(columnNames, text)
			}
		}
		return columnNames
	}

	for i, th := range headers {
		text := th.Text()
		if text == "" {
			continue
		}
		span := th.IntAttr("colspan", 1)
		if span < 1 {
			span = 1
		}
		for j := 0; j < span; j++ {
			if i+j < len(columnNames) {
				columnNames[i+j] = text
			}
		}
	}
	return columnNames
}
