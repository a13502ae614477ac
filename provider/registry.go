package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/fusionkit/errors"
	"github.com/kbukum/fusionkit/logger"
)

// Registry manages named backend factories and cached instances for one
// collaborator kind (transcription or diarization).
type Registry[T Provider] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
	instances map[string]T
	log       *logger.Logger
}

// NewRegistry creates a new empty Registry.
func NewRegistry[T Provider]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
		instances: make(map[string]T),
		log:       logger.Get("provider"),
	}
}

// RegisterFactory registers a named backend factory. Re-registering a name
// replaces the previous factory.
func (r *Registry[T]) RegisterFactory(name string, factory Factory[T]) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
	r.log.Debug("backend factory registered", logger.Fields(logger.FieldProvider, name))
}

// Create instantiates a backend using the named factory and its settings map.
// An unregistered name fails with NOT_FOUND carrying the registered names.
func (r *Registry[T]) Create(name string, cfg map[string]any) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	var zero T
	if !ok {
		return zero, errors.ProviderNotRegistered(name, r.List())
	}
	instance, err := factory(cfg)
	if err != nil {
		return zero, fmt.Errorf("create backend %q: %w", name, err)
	}
	return instance, nil
}

// Get returns a cached backend instance by name.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[name]
	return inst, ok
}

// Set caches a backend instance by name.
func (r *Registry[T]) Set(name string, instance T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[name] = instance
}

// List returns sorted names of all registered factories.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
