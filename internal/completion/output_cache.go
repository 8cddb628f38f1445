package completion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/NikitaCOEUR/termsuggest/internal/derrors"
)

// OutputCacheFile is the cache file name inside the cache directory
const OutputCacheFile = "generator-output.json"

// OutputEntry stores the captured stdout of one argument vector
type OutputEntry struct {
	Argv      []string  `json:"argv"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

// OutputCache keeps captured generator text between invocations.
// Only raw text is stored: suggestions are rebuilt from it on every request.
type OutputCache struct {
	mu       sync.RWMutex
	path     string
	entries  map[string]OutputEntry
	modified bool
	ttl      time.Duration
	now      func() time.Time
}

// NewOutputCache creates or loads a cache. It returns nil, nil when ttl <= 0,
// which callers treat as "caching disabled".
func NewOutputCache(cachePath string, ttl time.Duration) (*OutputCache, error) {
	if ttl <= 0 {
		return nil, nil
	}

	c := &OutputCache{
		path:    cachePath,
		entries: make(map[string]OutputEntry),
		ttl:     ttl,
		now:     time.Now,
	}

	if err := c.load(); err != nil && !os.IsNotExist(err) {
		return nil, derrors.NewCacheError(cachePath, "failed to load generator output cache", err)
	}

	return c, nil
}

func cacheKey(argv []string) string {
	return strings.Join(argv, "\x00")
}

// Get returns the cached output for argv, or false if missing or expired
func (c *OutputCache) Get(argv []string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey(argv)]
	if !ok || c.now().Sub(entry.Timestamp) > c.ttl {
		return "", false
	}
	return entry.Output, true
}

// Set stores output for argv
func (c *OutputCache) Set(argv []string, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(argv)] = OutputEntry{
		Argv:      append([]string(nil), argv...),
		Output:    output,
		Timestamp: c.now(),
	}
	c.modified = true
}

// Len returns the number of stored entries, expired ones included
func (c *OutputCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Save persists the cache to disk if it was modified, dropping expired entries
func (c *OutputCache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.modified {
		return nil
	}

	for key, entry := range c.entries {
		if c.now().Sub(entry.Timestamp) > c.ttl {
			delete(c.entries, key)
		}
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return derrors.NewCacheError(c.path, "failed to create cache dir", err)
	}

	data, err := json.Marshal(c.entries)
	if err != nil {
		return derrors.NewCacheError(c.path, "failed to encode cache", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return derrors.NewCacheError(c.path, "failed to write cache", err)
	}

	c.modified = false
	return nil
}

// load reads the cache from disk
func (c *OutputCache) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &c.entries)
}
