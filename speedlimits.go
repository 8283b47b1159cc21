// Package speedlimits converts the semi-structured HTML tables of a
// collaboratively edited reference page into a normalized mapping of
// road-classification rules and per-jurisdiction legal speed limits.
//
// Basic usage:
//
//	result, warnings, err := speedlimits.FromReader(f).Extract()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", model.FormatWarnings(warnings))
//	}
//
// The lower-level extract, tables, and jurisdiction packages are available
// for callers that already hold parsed table elements.
package speedlimits

import (
	"io"

	"github.com/osmtools/speedlimits/fetch"
)

// FromReader parses a page of HTML and returns an Extractor for fluent
// configuration. The page's tables are classified by shape; unrecognized
// tables are ignored.
func FromReader(r io.Reader) *Extractor {
	tables, err := fetch.Classify(r)
	return &Extractor{tables: tables, err: err}
}

// FromTables creates an Extractor from already-classified tables, typically
// the result of fetch.Client.Fetch.
func FromTables(t *fetch.Tables) *Extractor {
	return &Extractor{tables: t}
}
