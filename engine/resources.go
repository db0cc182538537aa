package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/status"
)

// ResourceStore holds shared singletons keyed by their Go type (tuning, inventory, metrics)
// so components reach them through the world without import cycles
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates an empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{resources: make(map[reflect.Type]any)}
}

// AddResource registers or replaces the resource of type T
// Use pointer types for resources that are mutated in place
func AddResource[T any](w *World, resource T) {
	rs := w.resources
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource returns the resource of type T, reporting whether it was registered
func GetResource[T any](w *World) (T, bool) {
	rs := w.resources
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource returns the resource of type T or panics
// Reserved for resources wired at session construction
func MustGetResource[T any](w *World) T {
	res, ok := GetResource[T](w)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// Tuning returns the registered gameplay tuning, registering the defaults on first use
func (w *World) Tuning() *parameter.Tuning {
	if t, ok := GetResource[*parameter.Tuning](w); ok {
		return t
	}
	def := parameter.Default()
	AddResource(w, &def)
	return &def
}

// Metrics returns the registered metrics registry, registering an empty one on first use
func (w *World) Metrics() *status.Registry {
	if r, ok := GetResource[*status.Registry](w); ok {
		return r
	}
	r := status.NewRegistry()
	AddResource(w, r)
	return r
}
