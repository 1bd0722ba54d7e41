// Package source provides cell content for the grid viewer.
//
// Coords labels cells with their coordinates and works for any grid size.
// SQLite serves a database table through database/sql and the pure-Go
// modernc.org/sqlite driver, fetching only the row pages the visible range
// needs and deriving per-column widths from sampled values.
package source
