// Package report defines the serializable session quality report.
//
// The types here are the engine's output contract: plain data with
// stable JSON field names, no behavior beyond construction helpers.
// Slices are always initialized so the JSON shape does not change
// between empty and populated sessions.
package report
