// Package config abstracts where configuration values come from.
// Initializers and hosts declare needs through `config:"KEY"` struct
// tags; the app runner satisfies them from the global Provider chain.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrKeyNotFound is returned by providers that do not hold the key,
// letting a composite chain fall through to the next provider.
var ErrKeyNotFound = errors.New("config: key not found")

// Provider supplies configuration values by key.
type Provider interface {
	Get(ctx context.Context, key string) (string, error)
}

var (
	globalMu       sync.RWMutex
	globalProvider Provider = EnvVarProvider{}
)

// SetGlobalProvider replaces the process-wide provider. Initializers
// that install secret backends call this before dependent
// initializers run.
func SetGlobalProvider(p Provider) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalProvider = p
}

// GlobalProvider returns the process-wide provider. Defaults to
// environment variables.
func GlobalProvider() Provider {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalProvider
}

// EnvVarProvider reads configuration from environment variables.
type EnvVarProvider struct{}

// Get returns the value of the environment variable named key.
func (EnvVarProvider) Get(_ context.Context, key string) (string, error) {
	value, found := os.LookupEnv(key)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// StaticProvider serves values from a fixed map. Used in tests and for
// wiring defaults.
type StaticProvider map[string]string

// Get returns the mapped value for key.
func (sp StaticProvider) Get(_ context.Context, key string) (string, error) {
	value, found := sp[key]
	if !found {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// CompositeProvider chains providers; the first one holding the key
// wins. Providers signalling ErrKeyNotFound fall through, any other
// error aborts the lookup.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a CompositeProvider over the given
// providers, consulted in order.
func NewCompositeProvider(providers ...Provider) CompositeProvider {
	return CompositeProvider{providers: providers}
}

// Get consults each provider in order until one holds the key.
func (cp CompositeProvider) Get(ctx context.Context, key string) (string, error) {
	for _, p := range cp.providers {
		value, err := p.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, ErrKeyNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
}
