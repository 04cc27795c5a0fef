package providers

import (
	"sort"
	"sync"
	"time"

	"github.com/helio-sh/wapp/pkg/httpclient"
)

// Builder constructs a provider from environment state and an HTTP client.
type Builder func(env Environ, client HTTPClient) (Provider, error)

// Registry resolves configured provider names to live provider instances.
// This is the single seam where new providers are added: one Register call
// plus one Provider implementation, and callers never branch on identity.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register adds a builder under the given name. Lookup is by exact string:
// a configured name resolves only if it matches a registered name
// byte-for-byte. Empty names and nil builders are ignored.
func (r *Registry) Register(name string, b Builder) {
	if b == nil || name == "" {
		return
	}

	r.mu.Lock()
	r.builders[name] = b
	r.mu.Unlock()
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether name resolves to a registered provider.
func (r *Registry) Supported(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[name]
	return ok
}

// Resolve constructs the provider registered under name. Construction
// failures from the matched builder propagate unchanged; unknown names fail
// with UnsupportedProviderError.
func (r *Registry) Resolve(name string, env Environ, client HTTPClient) (Provider, error) {
	r.mu.RLock()
	b, ok := r.builders[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnsupportedProviderError{Name: name}
	}
	return b(env, client)
}

// DefaultHTTPClient returns a tuned http client for provider fetches.
func DefaultHTTPClient() HTTPClient { return httpclient.NewRestyClient(15 * time.Second) }

// DefaultRegistry wires up the known weather providers.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(weatherAPIProviderID, func(env Environ, client HTTPClient) (Provider, error) {
		return NewWeatherAPIFromEnv(env, client)
	})
	reg.Register(openWeatherProviderID, func(env Environ, client HTTPClient) (Provider, error) {
		return NewOpenWeatherFromEnv(env, client)
	})
	return reg
}
