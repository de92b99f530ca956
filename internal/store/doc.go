// Package store provides durable storage for alert records as one JSON
// file per record under a root directory.
//
// The on-disk layout is the external contract: any tool may read or
// write <root>/alerts/<id>.json directly. The store therefore never
// keeps state outside the files themselves — no index, no cache. Every
// query is a full directory scan, which is acceptable at the expected
// scale of tens of pending records.
//
// # Critical Patterns
//
// Atomic visibility
//   - Writes go to a temp file in the same directory, then rename.
//   - Readers never observe a half-written record.
//
// Tolerant reads
//   - A missing file is "absent", not an error, so a concurrent
//     dismissal cannot fail an unrelated query.
//   - A malformed file is skipped during scans; one corrupt record must
//     not make every other record invisible.
//
// Deterministic ordering
//   - List sorts ascending by created_at, ties broken by id.
//
// What the store does NOT do: serialize concurrent writers. Two
// processes inserting into the same dedupe lane at once can both land;
// see the engine's dedupe notes.
package store
