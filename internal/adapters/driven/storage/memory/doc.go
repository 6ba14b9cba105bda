// Package memory provides in-memory implementations of driven ports.
// They back dry runs and tests; nothing survives the process.
package memory
