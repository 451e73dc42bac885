package refstore

import (
	"path/filepath"

	"github.com/refstack/refstore/internal/fs"
)

// Scheme turns the pure layout rules into ready-to-use absolute locations.
//
// Every directory-producing method creates the full directory chain before
// returning, so callers can write into the result immediately. Creation
// failures are logged and not surfaced; the write that follows fails
// naturally instead.
type Scheme struct {
	root *StorageRoot
}

// NewScheme creates a Scheme over the given root.
func NewScheme(root *StorageRoot) *Scheme {
	return &Scheme{root: root}
}

// Attachment returns the absolute path for a downloaded attachment file.
// The parent directory exists when the call returns.
func (s *Scheme) Attachment(lib LibraryID, itemKey, filename string) string {
	abs := s.root.Resolve(s.root.Durable(), RelAttachment(lib, itemKey, filename))
	s.ensureDir(filepath.Dir(abs))
	return abs
}

// AttachmentDir returns the per-item attachment directory, created.
func (s *Scheme) AttachmentDir(lib LibraryID, itemKey string) string {
	abs := s.root.Resolve(s.root.Durable(), RelAttachmentDir(lib, itemKey))
	s.ensureDir(abs)
	return abs
}

// AnnotationPreview returns the absolute path for one rendered annotation
// preview image. The parent directory exists when the call returns.
func (s *Scheme) AnnotationPreview(annotKey, docKey string, lib LibraryID, dark bool) string {
	abs := s.root.Resolve(s.root.Durable(), RelAnnotationPreview(annotKey, docKey, lib, dark))
	s.ensureDir(filepath.Dir(abs))
	return abs
}

// AnnotationPreviewsForDocument returns the preview directory of one
// document, created.
func (s *Scheme) AnnotationPreviewsForDocument(docKey string, lib LibraryID) string {
	abs := s.root.Resolve(s.root.Durable(), RelAnnotationPreviewsForDocument(docKey, lib))
	s.ensureDir(abs)
	return abs
}

// AnnotationPreviewsForLibrary returns the preview directory of one library,
// created.
func (s *Scheme) AnnotationPreviewsForLibrary(lib LibraryID) string {
	abs := s.root.Resolve(s.root.Durable(), RelAnnotationPreviewsForLibrary(lib))
	s.ensureDir(abs)
	return abs
}

// AnnotationPreviews returns the root of the preview tree, created.
func (s *Scheme) AnnotationPreviews() string {
	abs := s.root.Resolve(s.root.Durable(), RelAnnotationPreviews())
	s.ensureDir(abs)
	return abs
}

// JSONCache returns the absolute path for a cached per-object API payload.
// The parent directory exists when the call returns.
func (s *Scheme) JSONCache(kind Kind, lib LibraryID, key string) string {
	abs := s.root.Resolve(s.root.Durable(), RelJSONCache(kind, lib, key))
	s.ensureDir(filepath.Dir(abs))
	return abs
}

// Blob returns the absolute path of a named flat blob under the durable
// root.
func (s *Scheme) Blob(name string) string {
	return s.root.Resolve(s.root.Durable(), RelBlob(name))
}

// Database returns the absolute path of the primary database file for a
// user.
func (s *Scheme) Database(userID int64) string {
	return s.Blob(DatabaseFile(userID))
}

// Translators returns the absolute path of the bundled translator archive.
func (s *Scheme) Translators() string {
	return s.Blob(TranslatorsFile)
}

// CacheFile returns the absolute path of a named scratch file under the
// purgeable cache root. Safe only for regenerable data.
func (s *Scheme) CacheFile(name string) string {
	return s.root.Resolve(s.root.Cache(), RelBlob(name))
}

// Root returns the underlying StorageRoot.
func (s *Scheme) Root() *StorageRoot { return s.root }

// FileSystem returns the filesystem the scheme operates on.
func (s *Scheme) FileSystem() fs.FileSystem { return s.root.fsys }

// Logger returns the root's logger.
func (s *Scheme) Logger() *Logger { return s.root.log }

func (s *Scheme) ensureDir(abs string) {
	if err := s.root.fsys.MkdirAll(abs, 0o755); err != nil {
		s.root.log.LogMkdir(abs, err)
	}
}
