// Package statestore persists the client's small auxiliary collections as
// flat JSON blobs under the durable root: the pending background-upload
// queue and the two URL-session identifier lists.
//
// Each collection has a fixed shape known at compile time; there is no
// runtime type dispatch. Semantics are deliberately loose because every
// collection is a resumable queue, never the sole copy of critical data:
//
//   - Load reports absent (not an error) when the file is missing or does
//     not decode.
//   - Save overwrites the whole file; a failed write is logged and swallowed,
//     since the caller's in-memory collection stays authoritative and the
//     next save rewrites everything.
//   - Delete is idempotent.
package statestore
