// Package depend implements the process-wide dependency container.
// Contracts (usually interfaces) are bound to implementations at
// startup by initializers and resolved by constructors and hosts.
//
// Three lifecycles are supported: eager instances registered with
// Register, lazy singletons constructed once on first resolve, and
// factories constructing a fresh instance on every resolve.
package depend

import (
	"fmt"
	"reflect"
	"sync"
)

type lifecycle int

const (
	lifecycleInstance lifecycle = iota
	lifecycleLazySingleton
	lifecycleFactory
)

type entry struct {
	lifecycle lifecycle
	instance  any
	factory   func() (any, error)

	once     *sync.Once
	buildErr error
}

type container struct {
	mu      sync.RWMutex
	byType  map[reflect.Type]*entry
	byName  map[string]*entry
}

var global = newContainer()

func newContainer() *container {
	return &container{
		byType: map[reflect.Type]*entry{},
		byName: map[string]*entry{},
	}
}

// typeOf returns the reflect.Type of the contract type parameter,
// including interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register binds an already constructed instance to the contract T.
// Registering the same contract again replaces the previous binding.
func Register[T any](instance T) {
	global.put(typeOf[T](), &entry{lifecycle: lifecycleInstance, instance: instance})
}

// RegisterLazy binds a lazy singleton to the contract T: the factory
// runs once, on first resolve, and the instance is shared for the
// process lifetime.
func RegisterLazy[T any](factory func() (T, error)) {
	global.put(typeOf[T](), &entry{
		lifecycle: lifecycleLazySingleton,
		factory:   func() (any, error) { return factory() },
		once:      &sync.Once{},
	})
}

// RegisterFactory binds a factory to the contract T: every resolve
// constructs a new instance. Used for per-screen controllers and other
// short-lived collaborators.
func RegisterFactory[T any](factory func() (T, error)) {
	global.put(typeOf[T](), &entry{
		lifecycle: lifecycleFactory,
		factory:   func() (any, error) { return factory() },
	})
}

// RegisterNamed binds an instance under an explicit name instead of
// its type. Used for values whose type alone is not a meaningful
// contract, such as rendered reports.
func RegisterNamed[T any](instance T, name string) {
	global.putNamed(name, &entry{lifecycle: lifecycleInstance, instance: instance})
}

// Resolve returns the instance bound to the contract T, honoring the
// lifecycle it was registered with. Resolving an unregistered contract
// is a configuration error and returns a non-nil error.
func Resolve[T any]() (T, error) {
	var zero T
	v, err := ResolveType(typeOf[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("depend: %v resolved to incompatible %T", typeOf[T](), v)
	}
	return typed, nil
}

// MustResolve is Resolve but panics on error. Reserved for startup
// paths where a missing contract is fatal.
func MustResolve[T any]() T {
	v, err := Resolve[T]()
	if err != nil {
		panic(err)
	}
	return v
}

// ResolveNamed returns the instance registered under the given name.
func ResolveNamed[T any](name string) (T, error) {
	var zero T
	global.mu.RLock()
	e, found := global.byName[name]
	global.mu.RUnlock()
	if !found {
		return zero, fmt.Errorf("depend: no dependency registered under name %q", name)
	}
	v, err := e.resolve()
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("depend: name %q resolved to incompatible %T", name, v)
	}
	return typed, nil
}

// ResolveType resolves a contract by its reflect.Type. It backs the
// struct-tag injection performed by the app runner.
func ResolveType(t reflect.Type) (any, error) {
	global.mu.RLock()
	e, found := global.byType[t]
	global.mu.RUnlock()
	if !found {
		return nil, fmt.Errorf("depend: no dependency registered for contract %v", t)
	}
	return e.resolve()
}

// Registered lists the contract types currently bound, in no
// particular order. Used by introspection.
func Registered() []reflect.Type {
	global.mu.RLock()
	defer global.mu.RUnlock()
	types := make([]reflect.Type, 0, len(global.byType))
	for t := range global.byType {
		types = append(types, t)
	}
	return types
}

// Reset clears every binding. Tests use it to isolate registrations.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.byType = map[reflect.Type]*entry{}
	global.byName = map[string]*entry{}
}

func (c *container) put(t reflect.Type, e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byType[t] = e
}

func (c *container) putNamed(name string, e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName[name] = e
}

func (e *entry) resolve() (any, error) {
	switch e.lifecycle {
	case lifecycleFactory:
		return e.factory()
	case lifecycleLazySingleton:
		e.once.Do(func() {
			e.instance, e.buildErr = e.factory()
		})
		return e.instance, e.buildErr
	default:
		return e.instance, nil
	}
}
