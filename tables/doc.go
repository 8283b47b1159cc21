// Package tables resolves HTML table grids in the presence of rowspan and
// colspan attributes, presenting a flat (row, column) view so extraction
// code never has to reason about spanning cells.
package tables
