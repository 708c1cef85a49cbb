package loader

import "sync"

// LoadingManager tracks how many items are in flight across the Loaders that share it and reports progress through
// its hooks. Hooks are called outside the manager's lock, on whatever goroutine finished the item.
type LoadingManager struct {
	OnStart    func(url string, loaded, total int) // OnStart is called when an item starts loading.
	OnProgress func(url string, loaded, total int) // OnProgress is called each time an item finishes, successfully or not.
	OnLoad     func()                              // OnLoad is called when every item started so far has finished.
	OnError    func(url string, err error)         // OnError is called when an item fails.

	mu     sync.Mutex
	loaded int
	total  int
}

// DefaultLoadingManager is the LoadingManager Loaders use unless given their own.
var DefaultLoadingManager = NewLoadingManager(nil, nil, nil)

// NewLoadingManager creates a LoadingManager with the given hooks, any of which may be nil.
func NewLoadingManager(onLoad func(), onProgress func(url string, loaded, total int), onError func(url string, err error)) *LoadingManager {
	return &LoadingManager{
		OnLoad:     onLoad,
		OnProgress: onProgress,
		OnError:    onError,
	}
}

// ItemStart registers an item as loading.
func (manager *LoadingManager) ItemStart(url string) {
	manager.mu.Lock()
	manager.total++
	loaded, total := manager.loaded, manager.total
	manager.mu.Unlock()

	if manager.OnStart != nil {
		manager.OnStart(url, loaded, total)
	}
}

// ItemEnd registers an item as finished. When every started item has finished, OnLoad is called.
func (manager *LoadingManager) ItemEnd(url string) {
	manager.mu.Lock()
	manager.loaded++
	loaded, total := manager.loaded, manager.total
	manager.mu.Unlock()

	if manager.OnProgress != nil {
		manager.OnProgress(url, loaded, total)
	}

	if loaded == total && manager.OnLoad != nil {
		manager.OnLoad()
	}
}

// ItemError reports that an item failed. The item still has to be ended with ItemEnd.
func (manager *LoadingManager) ItemError(url string, err error) {
	if manager.OnError != nil {
		manager.OnError(url, err)
	}
}

// Counts returns how many items have finished and how many have been started.
func (manager *LoadingManager) Counts() (loaded, total int) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.loaded, manager.total
}
