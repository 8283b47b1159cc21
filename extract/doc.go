// Package extract implements the two table-shape-specific extraction
// algorithms: road-type definition tables (name plus filter expressions)
// and per-country speed tables (jurisdiction rows with vehicle-type
// columns). Both consume span-resolved grids and degrade gracefully,
// reporting problems as warnings instead of aborting.
package extract
