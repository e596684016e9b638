// Package model defines normalized data types handed to downstream
// consumers of the poller and stream.
//
// Conventions:
//   - Prices: float64, as quoted upstream
//   - Timestamps: int64 microseconds since Unix epoch for local times,
//     upstream times kept in their native unit and named accordingly
//   - IDs: string for symbols, uuid.UUID for locally assigned identities
package model
