// Package feedback turns derived session signals into observations.
//
// Two tiers: per-activity time-management items judge how long the teacher
// explained after each activity against what its correctness warranted, and
// session-level items judge pacing, total talk time, student-active share,
// and chat engagement bursts. Every check yields exactly one positive or one
// negative item, never both and never neither.
package feedback
