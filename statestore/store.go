package statestore

import (
	"errors"
	"io"
	"os"

	"github.com/refstack/refstore"
	"github.com/refstack/refstore/codec"
	"github.com/refstack/refstore/internal/fs"
)

// Store exposes typed accessors for the three auxiliary collections. It
// composes the path scheme, the codec, and the filesystem; it holds no state
// of its own and is cheap to construct.
type Store struct {
	scheme *refstore.Scheme
	fsys   fs.FileSystem
	c      codec.Codec
	log    *refstore.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithCodec overrides the codec. The default is codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.c = c
		}
	}
}

// New creates a Store over the given scheme, inheriting its filesystem and
// logger.
func New(scheme *refstore.Scheme, opts ...Option) *Store {
	s := &Store{
		scheme: scheme,
		fsys:   scheme.FileSystem(),
		c:      codec.Default,
		log:    scheme.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Uploads loads the pending background-upload queue. The second return is
// false when no queue is persisted.
func (s *Store) Uploads() (map[TaskID]Upload, bool) {
	data, ok := s.read(refstore.UploadsFile)
	if !ok {
		return nil, false
	}
	m, err := codec.DecodeMap[TaskID, Upload](s.c, data)
	if err != nil {
		s.log.LogLoad(refstore.UploadsFile, err)
		return nil, false
	}
	return m, true
}

// SaveUploads overwrites the persisted upload queue.
func (s *Store) SaveUploads(uploads map[TaskID]Upload) {
	s.write(refstore.UploadsFile, uploads)
}

// DeleteUploads removes the persisted upload queue. Idempotent.
func (s *Store) DeleteUploads() {
	s.remove(refstore.UploadsFile)
}

// ActiveSessions loads the identifiers of live URL sessions, in the order
// they were saved.
func (s *Store) ActiveSessions() ([]string, bool) {
	return s.loadSessions(refstore.ActiveSessionsFile)
}

// SaveActiveSessions overwrites the persisted active-session list.
func (s *Store) SaveActiveSessions(ids []string) {
	s.write(refstore.ActiveSessionsFile, ids)
}

// DeleteActiveSessions removes the persisted active-session list.
func (s *Store) DeleteActiveSessions() {
	s.remove(refstore.ActiveSessionsFile)
}

// ObservedSessions loads the session identifiers recorded by the share
// extension.
func (s *Store) ObservedSessions() ([]string, bool) {
	return s.loadSessions(refstore.ObservedSessionsFile)
}

// SaveObservedSessions overwrites the persisted observed-session list.
func (s *Store) SaveObservedSessions(ids []string) {
	s.write(refstore.ObservedSessionsFile, ids)
}

// DeleteObservedSessions removes the persisted observed-session list.
func (s *Store) DeleteObservedSessions() {
	s.remove(refstore.ObservedSessionsFile)
}

func (s *Store) loadSessions(name string) ([]string, bool) {
	data, ok := s.read(name)
	if !ok {
		return nil, false
	}
	ids, err := codec.DecodeList[string](s.c, data)
	if err != nil {
		s.log.LogLoad(name, err)
		return nil, false
	}
	return ids, true
}

// read returns the blob's bytes, or false when it is absent. I/O errors
// other than not-exist degrade to absent as well, logged.
func (s *Store) read(name string) ([]byte, bool) {
	f, err := s.fsys.OpenFile(s.scheme.Blob(name), os.O_RDONLY, 0)
	if err != nil {
		if !errors.Is(err, refstore.ErrNotFound) {
			s.log.LogLoad(name, err)
		}
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.log.LogLoad(name, err)
		return nil, false
	}
	return data, true
}

// write fully replaces the blob's content: last writer wins, no merging.
// The bytes go to a sibling temp file first and land via rename, so a save
// that dies mid-write leaves the previous persisted copy intact. Failures
// are logged and swallowed; the caller's in-memory collection is the source
// of truth and the next save retries.
func (s *Store) write(name string, v any) {
	data, err := s.c.Marshal(v)
	if err != nil {
		s.log.LogSave(name, err)
		return
	}

	path := s.scheme.Blob(name)
	tmp := path + ".tmp"

	f, err := s.fsys.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		s.log.LogSave(name, err)
		return
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		s.fsys.Remove(tmp)
		s.log.LogSave(name, err)
		return
	}
	if err := f.Close(); err != nil {
		s.fsys.Remove(tmp)
		s.log.LogSave(name, err)
		return
	}
	if err := s.fsys.Rename(tmp, path); err != nil {
		s.fsys.Remove(tmp)
		s.log.LogSave(name, err)
		return
	}
	s.log.LogSave(name, nil)
}

func (s *Store) remove(name string) {
	err := s.fsys.Remove(s.scheme.Blob(name))
	if err != nil && !errors.Is(err, refstore.ErrNotFound) {
		s.log.LogSave(name, err)
	}
}
