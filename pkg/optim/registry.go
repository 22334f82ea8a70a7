package optim

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Resolution failures. Callers can distinguish a missing module (typically
// meaning the providing package is not installed) from a missing class
// inside a known module.
var (
	ErrUnknownModule = errors.New("module is not registered")
	ErrUnknownClass  = errors.New("class not found in module")
)

// Registry is a lookup table from (module path, class name) to a Factory.
// It is safe for concurrent use. Registration normally happens from
// provider package init functions; resolution happens at construction
// time.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]Factory
}

// NewRegistry returns an empty factory registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]map[string]Factory)}
}

// Default is the process-wide registry used by Register and consumed by
// hub.New unless a client is constructed with an explicit registry.
var Default = NewRegistry()

// Register adds a factory to the Default registry. It is intended to be
// called from provider package init functions and panics on a nil factory
// or a duplicate (module, class) pair, as those are programmer errors.
func Register(module, class string, f Factory) {
	Default.Register(module, class, f)
}

// Register adds a factory under the given module path and class name.
// It panics on a nil factory or a duplicate registration.
func (r *Registry) Register(module, class string, f Factory) {
	if f == nil {
		panic("optim: Register factory is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	classes, ok := r.modules[module]
	if !ok {
		classes = make(map[string]Factory)
		r.modules[module] = classes
	}
	if _, dup := classes[class]; dup {
		panic(fmt.Sprintf("optim: Register called twice for %s.%s", module, class))
	}
	classes[class] = f
}

// Resolve returns the factory registered under module and class.
// A missing module fails with ErrUnknownModule; a registered module
// without the class fails with ErrUnknownClass.
func (r *Registry) Resolve(module, class string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes, ok := r.modules[module]
	if !ok {
		return nil, fmt.Errorf("module %q: %w", module, ErrUnknownModule)
	}
	f, ok := classes[class]
	if !ok {
		return nil, fmt.Errorf("class %q in module %q: %w", class, module, ErrUnknownClass)
	}
	return f, nil
}

// Modules returns the registered module paths in sorted order.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for m := range r.modules {
		names = append(names, m)
	}
	sort.Strings(names)
	return names
}

// Classes returns the class names registered under a module in sorted
// order. It returns nil for an unknown module.
func (r *Registry) Classes(module string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes, ok := r.modules[module]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(classes))
	for c := range classes {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}
