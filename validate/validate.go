package validate

import (
	"regexp"

	"github.com/osmtools/speedlimits/model"
)

// Placeholders are the shortest brace-delimited tokens in a filter
// expression: "{motorway}" references the road type named "motorway".
var placeholderPattern = regexp.MustCompile(`\{(.*?)\}`)

// RoadTypeFilters checks that every placeholder embedded in a road type's
// filter expressions names a defined road type. The check is one hop deep:
// it does not chase transitive or cyclic references.
func RoadTypeFilters(roadTypes map[string]model.RoadType) []model.Warning {
	var warnings []model.Warning
	for _, name := range sortedKeys(roadTypes) {
		for _, filter := range roadTypes[name].Filters() {
			for _, match := range placeholderPattern.FindAllStringSubmatch(filter, -1) {
				placeholder := match[1]
				if _, ok := roadTypes[placeholder]; !ok {
					warnings = append(warnings,
						model.Warningf("%s: Unable to map '%s'", name, placeholder))
				}
			}
		}
	}
	return warnings
}

// SpeedTableRoadTypes checks that every road-type name carried by a speed
// entry is defined in the road-type table.
func SpeedTableRoadTypes(speedsByCode map[string][]model.SpeedEntry, roadTypes map[string]model.RoadType) []model.Warning {
	var warnings []model.Warning
	for _, code := range sortedKeys(speedsByCode) {
		for _, entry := range speedsByCode[code] {
			if entry.Name == "" {
				continue
			}
			if _, ok := roadTypes[entry.Name]; !ok {
				warnings = append(warnings,
					model.Warningf("%s: Unable to map '%s'", code, entry.Name))
			}
		}
	}
	return warnings
}
