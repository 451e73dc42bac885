package refstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Bundled asset names the seeding step looks for. The compressed variant is
// preferred; the application ships whichever it likes.
const (
	schemaAsset     = "schema.json"
	schemaAssetGzip = "schema.json.gz"
)

// SeedSchema copies the bundled object schema into the durable root, so the
// client has a usable schema before its first sync. A gzip-packed asset is
// decompressed transparently.
//
// Seeding is idempotent: an already-seeded schema file is left untouched.
// A bundle without a schema asset is a no-op, not an error; the schema cache
// is refreshed from the network during sync anyway. Callers treat a returned
// error as non-fatal.
func SeedSchema(assets AssetProvider, s *Scheme) error {
	dst := s.Blob(SchemaFile)
	if _, err := s.root.fsys.Stat(dst); err == nil {
		return nil
	}

	src, err := openSchemaAsset(assets)
	if err != nil {
		return err
	}
	if src == nil {
		s.root.log.Debug("no bundled schema asset, skipping seed")
		return nil
	}
	defer src.Close()

	if err := writeStream(s.root.fsys, dst, src); err != nil {
		return fmt.Errorf("seed schema: %w", err)
	}
	s.root.log.Debug("schema cache seeded", "path", dst)
	return nil
}

func openSchemaAsset(assets AssetProvider) (io.ReadCloser, error) {
	if rc, err := assets.Open(schemaAssetGzip); err == nil {
		zr, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("seed schema: %w", err)
		}
		return &gzipAsset{zr: zr, rc: rc}, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("seed schema: %w", err)
	}

	rc, err := assets.Open(schemaAsset)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("seed schema: %w", err)
	}
	return rc, nil
}

// gzipAsset closes both the decompressor and the underlying asset stream.
type gzipAsset struct {
	zr *gzip.Reader
	rc io.ReadCloser
}

func (g *gzipAsset) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipAsset) Close() error {
	zerr := g.zr.Close()
	rerr := g.rc.Close()
	if zerr != nil {
		return zerr
	}
	return rerr
}
