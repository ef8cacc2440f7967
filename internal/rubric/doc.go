// Package rubric evaluates a session against a fixed set of criteria.
//
// Every criterion starts at a base score of 3.0 and walks a declarative list
// of signal checks; each check adds or subtracts half a point and records its
// evidence. Scores are clamped to [1.0, 5.0] and snapped to half steps. The
// overall criterion is the rounded mean of the others, never an independent
// signal score. Keeping the checks as data makes the grading auditable:
// every half point can be traced to one named threshold.
package rubric
