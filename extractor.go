package speedlimits

import (
	"fmt"

	"github.com/osmtools/speedlimits/extract"
	"github.com/osmtools/speedlimits/fetch"
	"github.com/osmtools/speedlimits/jurisdiction"
	"github.com/osmtools/speedlimits/jurisdiction/isoref"
	"github.com/osmtools/speedlimits/model"
	"github.com/osmtools/speedlimits/speedparser"
	"github.com/osmtools/speedlimits/validate"
)

// Result bundles the two extracted structures.
type Result struct {
	RoadTypes                map[string]model.RoadType     `json:"roadTypes"`
	SpeedLimitsByCountryCode map[string][]model.SpeedEntry `json:"speedLimitsByCountryCode"`
}

// Extractor provides a fluent interface over the extraction pipeline. Each
// configuration method returns a new Extractor instance, so a configured
// extractor can be shared and terminal operations are safe to call
// concurrently.
type Extractor struct {
	tables *fetch.Tables

	// Injected collaborators; nil selects the defaults.
	reference jurisdiction.Reference
	overrides map[string]string
	parse     extract.ParseFunc

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy so each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	c := *e
	return &c
}

// WithReference replaces the jurisdiction reference lookup. The default is
// the bundled ISO-3166 dataset.
func (e *Extractor) WithReference(ref jurisdiction.Reference) *Extractor {
	c := e.clone()
	c.reference = ref
	return c
}

// WithOverrides replaces the curated jurisdiction-name override table.
func (e *Extractor) WithOverrides(overrides map[string]string) *Extractor {
	c := e.clone()
	c.overrides = overrides
	return c
}

// WithSpeedParser replaces the speed-cell parsing function. The default is
// speedparser.Parse.
func (e *Extractor) WithSpeedParser(parse extract.ParseFunc) *Extractor {
	c := e.clone()
	c.parse = parse
	return c
}

// RoadTypes extracts the road-type definition table.
func (e *Extractor) RoadTypes() (map[string]model.RoadType, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.tables.RoadTypes == nil {
		return nil, fmt.Errorf("page has no road-type table")
	}
	return extract.RoadTypes(e.tables.RoadTypes), nil
}

// SpeedLimits extracts every speed table on the page into one combined
// result, in document order.
func (e *Extractor) SpeedLimits() (model.SpeedTableResult, error) {
	if e.err != nil {
		return model.SpeedTableResult{}, e.err
	}

	resolver := jurisdiction.NewResolver(e.jurisdictionReference(), e.overrides)
	parse := e.parse
	if parse == nil {
		parse = speedparser.Parse
	}

	combined := model.SpeedTableResult{
		SpeedLimitsByCountryCode: make(map[string][]model.SpeedEntry),
	}
	for _, table := range e.tables.Speeds {
		result := extract.SpeedTable(table, parse, resolver)
		for code, entries := range result.SpeedLimitsByCountryCode {
			combined.SpeedLimitsByCountryCode[code] = append(
				combined.SpeedLimitsByCountryCode[code], entries...)
		}
		combined.Warnings = append(combined.Warnings, result.Warnings...)
	}
	return combined, nil
}

// Extract runs both extractions and the cross-reference validation passes.
// Warnings from extraction come first, then validation findings, all in
// emission order.
func (e *Extractor) Extract() (Result, []model.Warning, error) {
	roadTypes, err := e.RoadTypes()
	if err != nil {
		return Result{}, nil, err
	}

	speeds, err := e.SpeedLimits()
	if err != nil {
		return Result{}, nil, err
	}

	warnings := append([]model.Warning(nil), speeds.Warnings...)
	warnings = append(warnings, validate.RoadTypeFilters(roadTypes)...)
	warnings = append(warnings, validate.SpeedTableRoadTypes(speeds.SpeedLimitsByCountryCode, roadTypes)...)

	return Result{
		RoadTypes:                roadTypes,
		SpeedLimitsByCountryCode: speeds.SpeedLimitsByCountryCode,
	}, warnings, nil
}

func (e *Extractor) jurisdictionReference() jurisdiction.Reference {
	if e.reference != nil {
		return e.reference
	}
	return isoref.New()
}
