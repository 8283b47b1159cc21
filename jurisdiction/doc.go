// Package jurisdiction resolves display names like "Belgium:Flanders" to
// stable ISO-3166 codes. A curated override table takes precedence over the
// injected reference lookup, which keeps names the reference data gets
// wrong (or does not carry at all) resolvable.
package jurisdiction
