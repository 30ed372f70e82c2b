// Package kernel provides the value objects shared by the wizard's domain model.
//
// The package includes:
//   - UUID: an opaque identifier for carpet items, wrapping github.com/google/uuid
//   - Date: a civil calendar date (no time of day, no zone) used for pickup scheduling
//
// Both are immutable and comparable with ==, so they can be used as map keys.
package kernel
