// Package sqlite records pipeline runs and their enriched products in a
// SQLite database (modernc.org/sqlite, no CGO).
//
// Schema changes live in migrations/ as numbered *.up.sql files and are
// applied in order on open.
package sqlite
