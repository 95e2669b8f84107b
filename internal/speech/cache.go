package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Cache is a content-addressed store of synthesized audio: one file per
// (text, language) digest. Entries are permanent until externally cleared;
// there is no eviction. Concurrent writers for the same key write identical
// bytes, so last-writer-wins needs no locking.
type Cache struct {
	dir string
}

// NewCache opens (creating if needed) a cache directory.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Key returns the deterministic digest for normalized text and language.
// Identical inputs always hash to the same key.
func (c *Cache) Key(text, language string) string {
	h := sha256.Sum256([]byte(text + "\n" + language))
	return hex.EncodeToString(h[:])
}

// Lookup reports whether an artifact is cached for key, returning its path.
func (c *Cache) Lookup(key string) (string, bool) {
	path := c.entryPath(key)
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return "", false
	}
	return path, true
}

// Store copies the artifact at srcPath into the cache. Idempotent: an
// existing entry for the key is kept as is, never overwritten.
func (c *Cache) Store(key, srcPath string) error {
	if _, ok := c.Lookup(key); ok {
		return nil
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := os.WriteFile(c.entryPath(key), data, 0644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, key+".mp3")
}
