// Package services defines shared utilities consumed by the consolidation
// engine and the external collaborators (probe, guesser, identity lookup).
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that stamp failures with
//     stage and operation context for consistent reporting.
//   - Classification helpers so callers can tell configuration problems apart
//     from transient collaborator failures.
//
// Use these helpers when wiring new collaborator logic so error handling stays
// uniform across the pipeline.
package services
