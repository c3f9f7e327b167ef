package fragment

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// Producer builds one fragment. It may return a nil tree with a nil
// error to indicate an intentionally empty fragment.
type Producer func(ctx context.Context, params Params) (*tag.Tag, error)

// Registry maps fragment names to producers. It is safe for concurrent
// use; registration typically happens at startup, lookups on every
// request.
type Registry struct {
	mu        sync.RWMutex
	producers map[string]Producer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{producers: make(map[string]Producer)}
}

// Register adds a producer under name. Names are case sensitive and
// must be unique; registering a taken name returns ErrDuplicate.
func (reg *Registry) Register(name string, p Producer) error {
	if name == "" {
		return fmt.Errorf("fragment: empty name")
	}
	if p == nil {
		return fmt.Errorf("%w: %q", ErrNilProducer, name)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.producers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	reg.producers[name] = p
	return nil
}

// MustRegister is Register but panics on error. Intended for package
// init style wiring where a duplicate is a programming mistake.
func (reg *Registry) MustRegister(name string, p Producer) {
	if err := reg.Register(name, p); err != nil {
		panic(err)
	}
}

// Lookup returns the producer registered under name.
func (reg *Registry) Lookup(name string) (Producer, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	p, ok := reg.producers[name]
	return p, ok
}

// Names returns all registered fragment names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.producers))
	for name := range reg.producers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered producers.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.producers)
}

// Produce runs the producer registered under name. An unknown name
// returns ErrNotFound wrapped with the name.
func (reg *Registry) Produce(ctx context.Context, name string, params Params) (*tag.Tag, error) {
	p, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p(ctx, params)
}
