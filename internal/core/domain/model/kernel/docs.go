// Package kernel contains shared value objects used across the domain model.
// These are the building blocks for entities and aggregates: immutable,
// validated on construction, and safe for concurrent use.
package kernel
