// Package engine derives a quality report from a session bundle.
//
// Evaluate is a pure pipeline: transcript normalization, segment merging,
// correctness aggregation, timeline correlation, feedback synthesis, and
// rubric grading, in that order. Given the same bundle and configuration it
// produces byte-identical output; anything run-specific (report IDs,
// evaluation timestamps) belongs to the archive layer, not here.
package engine
