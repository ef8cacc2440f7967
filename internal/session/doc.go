// Package session defines the typed input records the derivation engine
// consumes: transcript lines, chat messages, poll responses, activity
// records, per-student summaries, and session metadata.
//
// All timestamp fields are opaque strings; only timeutil interprets them.
// Records are treated as immutable once a Bundle is assembled, and unknown
// enum values are coerced to the most plausible canonical member instead of
// being rejected.
package session
