// Package model defines the data types shared by the table extractors:
// road-type definitions, per-jurisdiction speed-limit entries, and the
// warning channel used for non-fatal extraction problems.
package model
