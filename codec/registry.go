package codec

import "sync"

// Registry manages the available decode backends
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

var defaultRegistry = &Registry{
	backends: make(map[string]Backend),
}

// Register registers a backend under its name
func Register(backend Backend) {
	defaultRegistry.Register(backend)
}

// Get retrieves a backend by name
func Get(name string) (Backend, error) {
	return defaultRegistry.Get(name)
}

// List returns all registered backends
func List() []Backend {
	return defaultRegistry.List()
}

// Register registers a backend under its name
func (r *Registry) Register(backend Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends[backend.Name()] = backend
}

// Get retrieves a backend by name
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[name]
	if !ok {
		return nil, ErrBackendNotFound
	}
	return backend, nil
}

// List returns all registered backends (deduplicated)
func (r *Registry) List() []Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Backend]bool)
	backends := make([]Backend, 0)

	for _, backend := range r.backends {
		if !seen[backend] {
			seen[backend] = true
			backends = append(backends, backend)
		}
	}

	return backends
}
