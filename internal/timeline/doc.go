// Package timeline correlates teacher speech with activity outcomes.
//
// For every activity that actually happened it derives a pre-teaching window,
// in-activity talk overlap, a post-teaching window, a confusion scan over
// student chat, and a calibration insight comparing planned against actual
// duration in light of the resulting correctness. Activities without usable
// timestamps cannot be placed on the axis and are excluded entirely.
package timeline
