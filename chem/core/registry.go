package core

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Factory builds a new Iter from an existing one plus caller-supplied
// arguments. It is how third parties add combinators that can be invoked by
// name.
type Factory[T any] func(in *Iter[T], args ...any) (*Iter[T], error)

// Registry maps combinator names to Factories. A name may be registered once
// per element type. It is safe for concurrent use, but registration is meant
// to happen during program initialization.
type Registry struct {
	mu    sync.RWMutex
	items map[string]map[string]any
	order []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]map[string]any)}
}

func typeKey[T any]() string {
	var zero Factory[T]
	return fmt.Sprintf("%T", zero)
}

// Register adds f under name for element type T.
func Register[T any](r *Registry, name string, f Factory[T]) error {
	if name == "" {
		return Precondition("register", "extension name must not be empty")
	}
	if f == nil {
		return Precondition("register", "extension %q has a nil factory", name)
	}
	key := typeKey[T]()

	r.mu.Lock()
	defer r.mu.Unlock()
	byType, ok := r.items[name]
	if !ok {
		byType = make(map[string]any)
		r.items[name] = byType
		r.order = append(r.order, name)
	}
	if _, exists := byType[key]; exists {
		return fmt.Errorf("extension %q already registered for %s", name, key)
	}
	byType[key] = f
	return nil
}

// MustRegister is like Register but panics on error. Use it from init.
func MustRegister[T any](r *Registry, name string, f Factory[T]) {
	if err := Register(r, name, f); err != nil {
		panic(err)
	}
}

// Lookup returns the Factory registered under name for element type T.
func Lookup[T any](r *Registry, name string) (Factory[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byType, ok := r.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
	}
	f, ok := byType[typeKey[T]()].(Factory[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q has no %s", ErrExtensionType, name, typeKey[T]())
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := slices.Clone(r.order)
	slices.Sort(names)
	return names
}

// Extend looks up name and applies it to in.
func Extend[T any](r *Registry, name string, in *Iter[T], args ...any) (*Iter[T], error) {
	f, err := Lookup[T](r, name)
	if err != nil {
		return nil, err
	}
	return f(in, args...)
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide Registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

type registryKey struct{}

// WithRegistry attaches r to the context so callers deeper in the stack
// resolve extensions against it instead of the default.
func WithRegistry(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, r)
}

// GetRegistry returns the Registry attached to ctx, or the default one.
func GetRegistry(ctx context.Context) *Registry {
	if ctx != nil {
		if r, ok := ctx.Value(registryKey{}).(*Registry); ok {
			return r
		}
	}
	return defaultRegistry
}
