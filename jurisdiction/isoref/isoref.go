// Package isoref implements jurisdiction.Reference on top of the bundled
// ISO-3166 dataset from github.com/pariz/gountries, so the extractors can
// resolve real-world country and subdivision names without any network or
// database dependency.
package isoref

import (
	"strings"

	"github.com/pariz/gountries"
	"golang.org/x/text/cases"

	"github.com/osmtools/speedlimits/jurisdiction"
)

// Reference resolves names against the embedded gountries data. It is
// read-only after construction and safe for concurrent use.
type Reference struct {
	query *gountries.Query
	fold  cases.Caser
}

// New loads the embedded dataset.
func New() *Reference {
	return &Reference{
		query: gountries.New(),
		fold:  cases.Fold(),
	}
}

// CountryCode looks up a country by name, falling back to a case-folded
// comparison against common and official names when the dataset's own
// lookup misses.
func (r *Reference) CountryCode(name string) (string, bool) {
	if country, err := r.query.FindCountryByName(name); err == nil {
		return country.Alpha2, true
	}

	folded := r.fold.String(name)
	for _, country := range r.query.Countries {
		if r.fold.String(country.Name.Common) == folded ||
			r.fold.String(country.Name.Official) == folded {
			return country.Alpha2, true
		}
	}
	return "", false
}

// Subdivisions enumerates a country's subdivisions with fully qualified
// ISO-3166-2 codes ("BE-VLG", not "VLG").
func (r *Reference) Subdivisions(alpha2 string) []jurisdiction.Subdivision {
	country, err := r.query.FindCountryByAlpha(alpha2)
	if err != nil {
		return nil
	}

	divisions := country.SubDivisions()
	out := make([]jurisdiction.Subdivision, 0, len(divisions))
	for _, sd := range divisions {
		code := sd.Code
		if !strings.HasPrefix(code, alpha2+"-") {
			code = alpha2 + "-" + code
		}
		out = append(out, jurisdiction.Subdivision{Name: sd.Name, Code: code})
	}
	return out
}
