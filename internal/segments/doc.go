// Package segments merges normalized transcript lines into continuous speech
// segments and derives talk-time aggregates from them.
//
// A segment is a maximal run of transcript lines whose inter-line gaps stay
// within the configured threshold. Segments are disjoint, ordered, and
// non-overlapping. Total talk time is summed over raw line durations, not
// segment spans, so intra-segment silence is never counted as speech.
package segments
