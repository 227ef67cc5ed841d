// Package store persists built expression trees in a content-addressed
// catalog.
//
// Each record keys the tree's canonical serialization by its TreeHash,
// alongside the source text it was parsed from. Writes are idempotent:
// saving a structurally equal tree twice is a no-op. The catalog is
// SQLite with WAL mode, one writer, concurrent readers.
package store
