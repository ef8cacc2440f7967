// Package archive persists evaluated reports in a local SQLite database.
//
// The archive is the only layer that attaches run identity: report IDs and
// evaluation timestamps live here, keeping the engine's output a pure
// function of its input. Writes take a file lock so concurrent lectern
// invocations against the same archive directory serialize cleanly.
package archive
