// Package assets keeps an offline copy of the game's static files and serves
// them cache-first, falling back to the network for anything not cached.
package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

const CacheName = "friends-snake-cache-v1"

// DefaultManifest is the fixed list of paths cached on install.
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/styles.css",
	"/app.js",
	"/manifest.json",
	"/assets/bgm.wav",
	"/assets/icons/icon-192.png",
	"/assets/icons/icon-512.png",
}

var (
	ErrNotFound     = errors.New("asset not found")
	ErrNotInstalled = errors.New("cache not installed")
)

// Cache is a named, versioned set of assets. It is safe for concurrent use.
type Cache struct {
	Name string

	mu        sync.RWMutex
	entries   map[string]*Entry
	installed bool
	active    bool
}

func NewCache(name string) *Cache {
	return &Cache{Name: name, entries: make(map[string]*Entry)}
}

// Install fetches every manifest path. It is all-or-nothing: if any fetch
// fails the cache keeps its previous contents and the error is returned.
func (c *Cache) Install(ctx context.Context, f Fetcher, manifest []string) error {
	fresh := make(map[string]*Entry, len(manifest))
	for _, p := range manifest {
		e, err := f.Fetch(ctx, p)
		if err != nil {
			return fmt.Errorf("install %s: %w", c.Name, err)
		}
		fresh[p] = e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = fresh
	c.installed = true
	return nil
}

// Activate lets the cache answer requests. Before activation every request
// goes to the network.
func (c *Cache) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.installed {
		return ErrNotInstalled
	}
	c.active = true
	return nil
}

func (c *Cache) Active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Match returns the cached entry for p when the cache is active.
func (c *Cache) Match(p string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.active {
		return nil, false
	}
	e, ok := c.entries[p]
	return e, ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
