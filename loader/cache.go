package loader

import "sync"

// Cache holds loaded resources by URL. It's safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	files map[string]any
}

// DefaultCache is the process-wide Cache Loaders use unless given their own.
var DefaultCache = NewCache()

// NewCache returns a new, empty Cache.
func NewCache() *Cache {
	return &Cache{files: map[string]any{}}
}

// Add stores the resource under the key given, replacing anything already there.
func (cache *Cache) Add(key string, file any) {
	cache.mu.Lock()
	cache.files[key] = file
	cache.mu.Unlock()
}

// Get returns the resource stored under the key, and whether there was one.
func (cache *Cache) Get(key string) (any, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	file, ok := cache.files[key]
	return file, ok
}

// Remove deletes the resource stored under the key, if any.
func (cache *Cache) Remove(key string) {
	cache.mu.Lock()
	delete(cache.files, key)
	cache.mu.Unlock()
}

// Clear empties the Cache.
func (cache *Cache) Clear() {
	cache.mu.Lock()
	cache.files = map[string]any{}
	cache.mu.Unlock()
}

// Len returns how many resources are cached.
func (cache *Cache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.files)
}
