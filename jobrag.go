// Package jobrag turns the free-form answer of a job-search assistant into a
// plain-text summary and an ordered list of job suggestions.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., answer/, htmltomarkdown/,
// slog/).
package jobrag
