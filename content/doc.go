// Package content provides file-identity helpers for already-resolved
// files: a streaming content hash for dedup, a lenient PDF magic-byte
// sniff, and content-type/size queries.
package content
