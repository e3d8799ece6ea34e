package ogmaker

import (
	"database/sql"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested image record does not exist.
var ErrNotFound = sql.ErrNoRows

// ImageCache is an in-memory cache of manifest records with TTL.
type ImageCache struct {
	mu      sync.RWMutex
	images  []ImageRecord
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewImageCache creates an ImageCache backed by the given Store.
func NewImageCache(s *Store, ttl time.Duration) *ImageCache {
	return &ImageCache{store: s, ttl: ttl}
}

func (c *ImageCache) valid() bool {
	return c.images != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ImageCache) Invalidate() {
	c.mu.Lock()
	c.images = nil
	c.mu.Unlock()
}

// ensureLoaded returns cached records after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ImageCache) ensureLoaded() ([]ImageRecord, error) {
	c.mu.RLock()
	if c.valid() {
		images := c.images
		c.mu.RUnlock()
		return images, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.images, nil
	}
	images, err := c.store.ListImages()
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []ImageRecord{}
	}
	c.images = images
	c.fetched = time.Now()
	return c.images, nil
}

// ListImages returns all manifest records, newest first.
func (c *ImageCache) ListImages() ([]ImageRecord, error) {
	return c.ensureLoaded()
}

// GetImage returns a single record by slug from the cache.
func (c *ImageCache) GetImage(slug string) (ImageRecord, error) {
	images, err := c.ensureLoaded()
	if err != nil {
		return ImageRecord{}, err
	}
	for _, img := range images {
		if img.Slug == slug {
			return img, nil
		}
	}
	return ImageRecord{}, ErrNotFound
}
