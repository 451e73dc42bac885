package refstore

import (
	"path/filepath"

	"github.com/refstack/refstore/internal/fs"
)

// StorageRoot owns the two base directories everything in this module hangs
// off: a durable directory that survives app updates and a purgeable cache
// directory the OS may wipe under storage pressure.
//
// A StorageRoot is initialized once per process and immutable thereafter.
// Base directories are created lazily on first access; creation failures are
// logged and not surfaced, so a transient permission error shows up at the
// file operation that follows rather than at startup.
type StorageRoot struct {
	durable string
	cache   string
	fsys    fs.FileSystem
	log     *Logger
}

// Option configures a StorageRoot.
type Option func(*StorageRoot)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *Logger) Option {
	return func(r *StorageRoot) {
		if l != nil {
			r.log = l
		}
	}
}

// WithFileSystem injects a filesystem implementation, mainly for tests.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(r *StorageRoot) {
		if fsys != nil {
			r.fsys = fsys
		}
	}
}

// NewRoot creates a StorageRoot over the given base directories.
// Neither directory is touched until first accessed.
func NewRoot(durable, cache string, opts ...Option) *StorageRoot {
	r := &StorageRoot{
		durable: durable,
		cache:   cache,
		fsys:    fs.Default,
		log:     NoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Durable returns the durable base directory, creating it and any missing
// parents if absent. Creating an existing directory is a no-op.
func (r *StorageRoot) Durable() string {
	r.mkdir(r.durable)
	return r.durable
}

// Cache returns the purgeable cache base directory, creating it if absent.
func (r *StorageRoot) Cache() string {
	r.mkdir(r.cache)
	return r.cache
}

// Resolve joins base with a slash-separated relative path. It is a pure
// join: no existence check, no directory creation.
func (r *StorageRoot) Resolve(base, rel string) string {
	return filepath.Join(base, filepath.FromSlash(rel))
}

// FileSystem returns the filesystem the root operates on.
func (r *StorageRoot) FileSystem() fs.FileSystem { return r.fsys }

// Logger returns the configured logger.
func (r *StorageRoot) Logger() *Logger { return r.log }

func (r *StorageRoot) mkdir(dir string) {
	if err := r.fsys.MkdirAll(dir, 0o755); err != nil {
		r.log.LogMkdir(dir, err)
	}
}
