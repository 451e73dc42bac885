// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, remove, mkdir, etc.)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// Production code should use fs.Default (which is [LocalFS]). Tests inject
// [FaultyFS] to exercise the storage layer's degrade-and-continue paths:
// swallowed save failures, loads that report absent, directory creation that
// surfaces at the following write.
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// The storage layer is synchronous by contract: operations complete or fail
// before returning, and there is no cancellation concept at this level.
package fs
