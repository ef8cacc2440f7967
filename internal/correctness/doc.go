// Package correctness aggregates poll responses into correctness statistics
// at session, activity, and question granularity.
//
// Empty input is a valid input: it yields a zero-valued stat, never an error.
package correctness
