package jurisdiction

import "strings"

// Subdivision is one sub-national region of a country as exposed by the
// reference data.
type Subdivision struct {
	Name string
	Code string
}

// Reference is the country/subdivision lookup capability the resolver
// consults. Implementations may be backed by any ISO-3166 dataset.
type Reference interface {
	// CountryCode returns the alpha-2 code for an exact country name.
	CountryCode(name string) (string, bool)

	// Subdivisions enumerates the subdivisions of a country given its
	// alpha-2 code. An unknown code yields an empty enumeration.
	Subdivisions(alpha2 string) []Subdivision
}

// Resolver maps jurisdiction display names to codes. It is read-only after
// construction and safe for concurrent use.
type Resolver struct {
	overrides map[string]string
	ref       Reference
}

// NewResolver creates a resolver backed by ref. A nil overrides map selects
// the curated default table; pass an empty map to disable overrides.
func NewResolver(ref Reference, overrides map[string]string) *Resolver {
	if overrides == nil {
		overrides = DefaultOverrides()
	}
	return &Resolver{overrides: overrides, ref: ref}
}

// Resolve maps a display name, optionally of the form "Country:Subdivision",
// to a jurisdiction code. An override hit on the whole string wins over all
// other logic. Otherwise the country part is looked up in the reference;
// with a subdivision part present, the first subdivision whose name equals
// it exactly provides the code. The ok result is false when no strategy
// produced a code; no further detail is reported.
func (r *Resolver) Resolve(name string) (code string, ok bool) {
	if code, ok := r.overrides[name]; ok {
		return code, true
	}

	parts := strings.SplitN(name, ":", 2)
	country, ok := r.countryCode(strings.TrimSpace(parts[0]))
	if !ok {
		return "", false
	}
	if len(parts) == 1 {
		return country, true
	}

	subdivision := strings.TrimSpace(parts[1])
	for _, sd := range r.subdivisions(country) {
		if sd.Name == subdivision {
			return sd.Code, true
		}
	}
	return "", false
}

// countryCode shields the resolver from a panicking reference
// implementation; a panic counts as a failed lookup.
func (r *Resolver) countryCode(name string) (code string, ok bool) {
	defer func() {
		if recover() != nil {
			code, ok = "", false
		}
	}()
	return r.ref.CountryCode(name)
}

func (r *Resolver) subdivisions(alpha2 string) (subs []Subdivision) {
	defer func() {
		if recover() != nil {
			subs = nil
		}
	}()
	return r.ref.Subdivisions(alpha2)
}
