package model

import (
	"fmt"
	"strings"
)

// RoadType holds the tag-filter expressions for one named road
// classification. Each expression may embed placeholders of the form
// {<road-type-name>} referring to other road types.
type RoadType struct {
	Filter         string `json:"filter,omitempty"`
	FuzzyFilter    string `json:"fuzzyFilter,omitempty"`
	RelationFilter string `json:"relationFilter,omitempty"`
}

// Filters returns the expressions that are present, in declaration order.
func (rt RoadType) Filters() []string {
	var out []string
	for _, f := range []string{rt.Filter, rt.FuzzyFilter, rt.RelationFilter} {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SpeedEntry is one row of the speed table for a single jurisdiction.
// Name is the road type the row describes; an empty Name means the entry
// applies without a road-type qualifier.
type SpeedEntry struct {
	Tags map[string]string `json:"tags"`
	Name string            `json:"name,omitempty"`
}

// SpeedTableResult is the output of the speed table extraction: an ordered
// list of entries per jurisdiction code, plus the warnings emitted while
// extracting. The result stays usable even with a non-empty warning list.
type SpeedTableResult struct {
	SpeedLimitsByCountryCode map[string][]SpeedEntry `json:"speedLimitsByCountryCode"`
	Warnings                 []Warning               `json:"warnings"`
}

// Warning describes a non-fatal problem encountered during extraction.
// Warnings are accumulated in emission order and never deduplicated.
type Warning string

// Warningf creates a Warning from a format string.
func Warningf(format string, args ...any) Warning {
	return Warning(fmt.Sprintf(format, args...))
}

// FormatWarnings joins warnings into a single human-readable string,
// one warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = string(w)
	}
	return strings.Join(lines, "\n")
}
