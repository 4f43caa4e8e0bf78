package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/susan-kimemia/alx-backend-storage/internal/config"
)

// ProviderConfig holds the configuration needed to create a store instance.
type ProviderConfig struct {
	// RedisAddress is the Redis/Valkey server address (e.g., "localhost:6379").
	RedisAddress string

	// RedisPassword is the password for the Redis/Valkey server.
	RedisPassword string

	// RedisDB is the Redis/Valkey database number.
	RedisDB int

	// Logger receives lifecycle events (connect, close) at debug level.
	// Operation errors are never logged here; they propagate to the caller.
	Logger zerolog.Logger
}

// Provider is a constructor function that creates a Store from config.
type Provider func(cfg ProviderConfig) (Store, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a store provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("store: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("store: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a new Store using the named provider and the given config.
func New(name string, cfg ProviderConfig) (Store, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("store: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}
	return p(cfg)
}

// FromConfig creates a Store from loaded application configuration.
func FromConfig(cfg *config.Config, logger zerolog.Logger) (Store, error) {
	return New(cfg.Store.Provider, ProviderConfig{
		RedisAddress:  cfg.Store.Redis.Address,
		RedisPassword: cfg.Store.Redis.Password,
		RedisDB:       cfg.Store.Redis.DB,
		Logger:        logger,
	})
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
