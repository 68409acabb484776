// Package cache persists document indexes on disk so unchanged include
// files are not re-indexed across runs. It is strictly best-effort: every
// failure degrades to a fresh index pass.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"tassls/internal/index"
)

// schemaVersion is bumped whenever the payload format changes, invalidating
// older entries.
const schemaVersion uint16 = 1

// Digest keys one cache entry.
type Digest [32]byte

// Key derives the cache key for a document: content hash, identity and the
// case mode all participate, since any of them changes the index.
func Key(doc string, contentHash [32]byte, caseSensitive bool) Digest {
	h := sha256.New()
	h.Write(contentHash[:])
	h.Write([]byte(doc))
	if caseSensitive {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// payload wraps the serialized index with a schema version for safe
// invalidation.
type payload struct {
	Schema uint16
	Index  *index.DocumentIndex
}

// Cache stores msgpack-encoded document indexes under a directory.
type Cache struct {
	dir string
}

// Open initializes a cache at the standard user cache location.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenAt(filepath.Join(base, app))
}

// OpenAt initializes a cache rooted at an explicit directory.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "idx", hex.EncodeToString(key[:])+".mp")
}

// Put serializes an index to the cache, replacing atomically.
func (c *Cache) Put(key Digest, idx *index.DocumentIndex) error {
	if c == nil || idx == nil {
		return nil
	}
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload{Schema: schemaVersion, Index: idx}); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads an index back. The boolean is false on miss or on any decode
// or schema mismatch.
func (c *Cache) Get(key Digest) (*index.DocumentIndex, bool) {
	if c == nil {
		return nil, false
	}
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()
	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false
	}
	if p.Schema != schemaVersion || p.Index == nil {
		return nil, false
	}
	return p.Index, true
}

// DropAll removes every cached entry, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
