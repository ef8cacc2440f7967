// Package config loads, normalizes, and validates lectern configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every analysis threshold the
// derivation engine applies: segment gap merging, talk-time ceilings, chat
// burst windows, correctness bands, and the topic/confusion vocabularies.
// These values encode grading policy, so they live here as named knobs rather
// than inline literals.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and validated thresholds.
package config
