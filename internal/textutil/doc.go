// Package textutil provides light text normalization for report display.
//
// The primary use cases are:
//   - Cleaning teacher names and session topics pulled from noisy exports
//   - Collapsing whitespace runs left by transcript tooling
//   - Truncating chat snippets quoted in reports
package textutil
