package refstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// PurgeCaches removes every regenerable tree: the JSON caches, the rendered
// annotation previews, and the contents of the cache root. Attachments and
// flat state blobs are kept.
//
// The trees are independent, so they are removed concurrently. A missing
// tree is not an error.
func (s *Scheme) PurgeCaches(ctx context.Context) error {
	targets := []string{
		s.root.Resolve(s.root.Durable(), jsonsDir),
		s.root.Resolve(s.root.Durable(), RelAnnotationPreviews()),
		s.root.Cache(),
	}

	g, _ := errgroup.WithContext(ctx)
	for _, dir := range targets {
		dir := dir
		g.Go(func() error {
			return s.removeContents(dir)
		})
	}
	return g.Wait()
}

// PurgeLibraryCaches removes the JSON caches and annotation previews of a
// single library, for targeted invalidation after leaving a group.
func (s *Scheme) PurgeLibraryCaches(ctx context.Context, lib LibraryID) error {
	targets := []string{
		s.root.Resolve(s.root.Durable(), filepath.Join(jsonsDir, lib.Folder())),
		s.root.Resolve(s.root.Durable(), RelAnnotationPreviewsForLibrary(lib)),
	}

	g, _ := errgroup.WithContext(ctx)
	for _, dir := range targets {
		dir := dir
		g.Go(func() error {
			return s.root.fsys.RemoveAll(dir)
		})
	}
	return g.Wait()
}

// removeContents deletes the entries of dir but keeps dir itself, so a
// purged cache root stays a valid base directory.
func (s *Scheme) removeContents(dir string) error {
	entries, err := s.root.fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if err := s.root.fsys.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
