// Package topics classifies free text against ordered pattern tables.
//
// The Extractor maps speech to concept labels (the built-in table covers
// circle-geometry vocabulary) and the Matcher detects confusion signals in
// student chat. Both tables are plain (pattern, label) data so a different
// subject domain can be swapped in from configuration without touching the
// engine.
package topics
