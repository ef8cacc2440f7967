// Package timeutil normalizes the clock strings found in raw session exports.
//
// Exports mix several timestamp shapes ("14:05:09", "2:05:09 PM",
// "2024-03-01 14:05") depending on which tool produced the row. ParseClock
// accepts all of them and reduces each to seconds since local midnight so the
// rest of the engine works on one numeric axis. Malformed values report
// ok=false instead of an error: noisy exports are expected and a bad row must
// not abort the whole report.
package timeutil
