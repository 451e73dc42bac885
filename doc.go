// Package refstore is the local file-storage layer of a reference-manager
// sync client.
//
// Everything the client persists outside its primary database lives under two
// base directories: a durable root that survives app updates (downloaded
// attachments, annotation previews, per-object JSON caches, small state blobs)
// and a purgeable cache root the OS may wipe under storage pressure.
//
// The package's contract is path derivation: a logical identity (library,
// item key, filename, object kind) maps to exactly one filesystem location,
// as a pure function with no hidden state. Callers never build paths
// themselves; they ask a [Scheme] for a location and write into it.
//
// # Layout under the durable root
//
//	downloads/<libFolder>/<itemKey>/<stem>
//	annotations/<libFolder>/<docKey>/<annotKey>[_dark].png
//	jsons/<libFolder>/<kindFolder>/<key>.json
//	uploads, activeUrlSessionIds, shareExtensionObservedUrlSessionIds
//	schema.json, maindb_<userId>.sqlite, translators.zip
//
// # Failure model
//
// Every value persisted here is a cache or a resumable queue, never the sole
// copy of critical data. Reads of missing or corrupt state degrade to
// "absent"; directory creation failures surface at the I/O that follows, not
// at derivation time. Nothing in this package panics or terminates the
// process.
//
// The package performs no locking: callers own serialization of concurrent
// writes to the same derived path. Directory creation is idempotent and safe
// to race.
package refstore
