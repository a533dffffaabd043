// Package assets loads and caches images by key. Keys are slash separated
// paths relative to the asset root (for example "assets/jamNote.png").
package assets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"chosenoffset.com/raccoon/internal/placeholders"
	"chosenoffset.com/raccoon/internal/render"
)

// ErrNotFound is returned when neither the optimized nor the original path
// of an asset could be loaded.
var ErrNotFound = errors.New("asset not found")

// Cache maps asset keys to loaded images. It is safe for concurrent use;
// loads run on background goroutines during preload and scene changes.
type Cache struct {
	loader   render.ResourceLoader
	renderer render.Renderer
	root     string

	mu       sync.RWMutex
	images   map[string]render.Image
	failed   map[string]error
	assetMap AssetMap
	total    int

	fallbackOnce sync.Once
	fallback     render.Image
}

// NewCache creates a cache that loads through loader from files under root.
// The renderer builds the placeholder image.
func NewCache(loader render.ResourceLoader, renderer render.Renderer, root string) *Cache {
	return &Cache{
		loader:   loader,
		renderer: renderer,
		root:     root,
		images:   make(map[string]render.Image),
		failed:   make(map[string]error),
	}
}

// SetAssetMap installs the original to optimized path mapping.
func (c *Cache) SetAssetMap(m AssetMap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assetMap = m
}

// IsCached reports whether key is loaded.
func (c *Cache) IsCached(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.images[key]
	return ok
}

// Get returns the image for key if it is loaded.
func (c *Cache) Get(key string) (render.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[key]
	return img, ok
}

// GetOrFallback returns the image for key or the placeholder.
func (c *Cache) GetOrFallback(key string) render.Image {
	if img, ok := c.Get(key); ok {
		return img
	}
	return c.Fallback()
}

// Fallback returns the shared visibly marked placeholder image.
func (c *Cache) Fallback() render.Image {
	c.fallbackOnce.Do(func() {
		c.fallback = c.renderer.NewImageFromImage(placeholders.Missing(256, 256))
	})
	return c.fallback
}

// Load returns the image for key, loading it if needed. It gives up when
// ctx is done; the abandoned load still populates the cache if it later
// succeeds.
func (c *Cache) Load(ctx context.Context, key string) (render.Image, error) {
	if img, ok := c.Get(key); ok {
		return img, nil
	}

	type result struct {
		img render.Image
		err error
	}
	done := make(chan result, 1)
	go func() {
		img, err := c.loadPaths(key)
		done <- result{img, err}
	}()

	select {
	case r := <-done:
		return r.img, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to load asset %s: %w", key, ctx.Err())
	}
}

// loadPaths tries the optimized path first, then the original.
func (c *Cache) loadPaths(key string) (render.Image, error) {
	c.mu.RLock()
	optimized, mapped := c.assetMap.Resolve(key)
	c.mu.RUnlock()

	var errs []error
	if mapped {
		img, err := c.loader.LoadImage(c.path(optimized))
		if err == nil {
			c.store(key, img)
			return img, nil
		}
		log.Printf("Warning: Failed to load optimized %s, trying original: %v", optimized, err)
		errs = append(errs, err)
	}

	img, err := c.loader.LoadImage(c.path(key))
	if err != nil {
		errs = append(errs, err)
		err = fmt.Errorf("failed to load asset %s: %w: %w", key, ErrNotFound, errors.Join(errs...))
		c.mu.Lock()
		c.failed[key] = err
		c.mu.Unlock()
		return nil, err
	}
	c.store(key, img)
	return img, nil
}

func (c *Cache) store(key string, img render.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[key] = img
	delete(c.failed, key)
}

func (c *Cache) path(key string) string {
	if c.root == "" {
		return filepath.FromSlash(key)
	}
	return filepath.Join(c.root, filepath.FromSlash(key))
}

// Stats describes the cache contents relative to the last preload.
type Stats struct {
	Loaded   int
	Failed   int
	Total    int
	Progress float64 // Loaded / Total in [0, 1]
}

// Stats reports how much of the preloaded manifest is warm.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := Stats{Loaded: len(c.images), Failed: len(c.failed), Total: c.total}
	if s.Total < s.Loaded {
		s.Total = s.Loaded
	}
	if s.Total > 0 {
		s.Progress = float64(s.Loaded) / float64(s.Total)
	}
	return s
}
