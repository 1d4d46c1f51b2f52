package domain

import (
	"iter"
	"slices"
	"sync"

	"go.trai.ch/zerr"
)

// ManifestSource produces the manifest used to populate a Registry.
type ManifestSource func() (*Manifest, error)

// Registry holds the declared components of one build invocation.
// Entries keep manifest order and are never removed.
type Registry struct {
	mu         sync.RWMutex
	components []Component
	index      map[string]int
	inabox     []string
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// EnsureInitialized populates the registry from the manifest if it is still empty.
// Calling it on a populated registry is a no-op.
func (r *Registry) EnsureInitialized(load ManifestSource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.components) > 0 {
		return nil
	}

	manifest, err := load()
	if err != nil {
		return err
	}
	if err := manifest.Validate(); err != nil {
		return err
	}

	for i := range manifest.Components {
		c := manifest.Components[i].Component()
		r.index[c.Name] = len(r.components)
		r.components = append(r.components, c)
	}
	r.inabox = slices.Clone(manifest.Inabox)
	return nil
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.components)
}

// Get returns the component registered under name.
func (r *Registry) Get(name string) (Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return Component{}, zerr.With(ErrComponentNotFound, "component", name)
	}
	return r.components[i], nil
}

// Components returns an iterator over the registered components in insertion order.
func (r *Registry) Components() iter.Seq[Component] {
	r.mu.RLock()
	snapshot := slices.Clone(r.components)
	r.mu.RUnlock()

	return slices.Values(snapshot)
}

// Names returns the registered component names in insertion order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.components))
	for i, c := range r.components {
		names[i] = c.Name
	}
	return names
}

// InaboxSet returns the in-a-box component set, preferring the manifest override.
func (r *Registry) InaboxSet() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.inabox) > 0 {
		return slices.Clone(r.inabox)
	}
	return slices.Clone(InaboxComponents)
}
