package refstore

import (
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/refstack/refstore/internal/fs"
)

// ContentResolver yields bytes and metadata for an opaque platform content
// handle. It is an external collaborator: the platform layer implements it,
// this module only consumes it.
type ContentResolver interface {
	// Open opens the handle's byte stream for reading.
	Open(handle string) (io.ReadCloser, error)
	// Size returns the handle's size in bytes, or false when unknown.
	Size(handle string) (int64, bool)
	// MimeType returns the handle's content type, or false when unknown.
	MimeType(handle string) (string, bool)
}

// AssetProvider serves read-only assets bundled with the application.
type AssetProvider interface {
	// Open opens the named asset. Missing assets return an error satisfying
	// errors.Is(err, ErrNotFound).
	Open(name string) (io.ReadCloser, error)
}

// FileResolver is a ContentResolver for handles that are plain file paths.
// Content types are detected from magic bytes, not the file name.
type FileResolver struct {
	fsys fs.FileSystem
}

// NewFileResolver creates a FileResolver. A nil fsys uses the local
// filesystem.
func NewFileResolver(fsys fs.FileSystem) *FileResolver {
	if fsys == nil {
		fsys = fs.Default
	}
	return &FileResolver{fsys: fsys}
}

// Open opens the file at the handle path.
func (r *FileResolver) Open(handle string) (io.ReadCloser, error) {
	return r.fsys.OpenFile(handle, os.O_RDONLY, 0)
}

// Size returns the file's size, or false when it cannot be determined.
func (r *FileResolver) Size(handle string) (int64, bool) {
	info, err := r.fsys.Stat(handle)
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// MimeType sniffs the file's content type, or false when it cannot be
// determined.
func (r *FileResolver) MimeType(handle string) (string, bool) {
	mtype, err := mimetype.DetectFile(handle)
	if err != nil {
		return "", false
	}
	return mtype.String(), true
}

// CopyAttachment streams the handle's bytes into the derived attachment
// location and returns the absolute path written.
func (s *Scheme) CopyAttachment(resolver ContentResolver, handle string, lib LibraryID, itemKey, filename string) (string, error) {
	src, err := resolver.Open(handle)
	if err != nil {
		return "", fmt.Errorf("open content handle: %w", err)
	}
	defer src.Close()

	dst := s.Attachment(lib, itemKey, filename)
	if err := writeStream(s.root.fsys, dst, src); err != nil {
		return "", fmt.Errorf("copy attachment %s: %w", itemKey, err)
	}
	return dst, nil
}

// writeStream replaces the file at path with the reader's content. The
// handle is released on every exit path.
func writeStream(fsys fs.FileSystem, path string, r io.Reader) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
