package dataset

import (
	"fmt"
	"os"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Cache memoizes loaded datasets by source identity so repeated render
// passes do not re-read the file. Identity is the path plus a size/mtime
// fingerprint; a changed file simply replaces the cached entry. No TTL or
// eviction: one static report, one (occasionally replaced) dataset.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	fingerprint string
	ds          *Dataset
}

// NewCache returns an empty dataset cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the cached dataset for path, loading it on first use or when
// the file's fingerprint has changed since the cached load.
func (c *Cache) Get(path string, opts LoadOptions) (*Dataset, error) {
	fp, err := fingerprint(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[path]; ok && entry.fingerprint == fp {
		zap.L().Debug("dataset cache hit", zap.String("path", path))
		return entry.ds, nil
	}

	ds, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	c.entries[path] = cacheEntry{fingerprint: fp, ds: ds}
	zap.L().Info("dataset loaded",
		zap.String("path", path),
		zap.Int("rows", len(ds.Rows)),
		zap.Int("columns", len(ds.Columns)),
	)
	return ds, nil
}

func fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", eris.Wrapf(ErrSourceNotFound, "dataset: %s", path)
		}
		return "", eris.Wrapf(err, "dataset: stat %s", path)
	}
	return fmt.Sprintf("%d-%d", info.Size(), info.ModTime().UnixNano()), nil
}
