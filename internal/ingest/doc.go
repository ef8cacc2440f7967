// Package ingest loads a session bundle from an export directory.
//
// A bundle directory holds up to six JSON files, one per telemetry stream.
// Missing files are normal: a session without polls simply has no
// polls.json, and the corresponding bundle field stays empty. Malformed
// JSON is an error; silently dropping a whole stream would skew every
// derived metric downstream.
package ingest
