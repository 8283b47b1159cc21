// Package validate cross-checks the two extracted structures: filter
// placeholders must name defined road types, and road-type names used in
// the speed table must exist in the road-type table. Both checks are pure
// and report findings as warnings only.
package validate
