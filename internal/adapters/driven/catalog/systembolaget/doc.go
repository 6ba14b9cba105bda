// Package systembolaget adapts the systembolaget command-line tool as a
// catalog source.
//
// The tool is run once per fetch as a subprocess:
//
//	systembolaget assortment --sort-by Name --sort ascending
//
// Its stdout must be a single JSON array of product objects. A non-zero
// exit is reported as *domain.ExternalToolError carrying stderr; output
// that is not an array of objects is *domain.MalformedResponseError.
// Neither is retried.
package systembolaget
