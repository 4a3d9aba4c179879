// Package store provides durable storage for recorded evaluation runs.
//
// A run is a set of angle samples evaluated at a point in time: each
// sample keeps the raw 64-bit angle pattern together with the bit patterns
// of the computed sine and cosine. Because the angle format serializes
// losslessly, a stored run can be replayed later and compared bit for bit
// against a fresh evaluation.
//
// Backed by SQLite with WAL mode and a single-writer connection pool.
package store
