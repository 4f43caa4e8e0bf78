package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/susan-kimemia/alx-backend-storage/internal/apperrors"
	"github.com/susan-kimemia/alx-backend-storage/internal/store"
)

// Operation identities under which calls are counted and recorded.
// They double as metric label values, so they must stay stable.
const (
	OpStore = "Cache.Store"
	OpGet   = "Cache.Get"
)

// Transform is a caller-supplied pure function applied to raw stored bytes
// before GetWith returns them.
type Transform[T any] func([]byte) (T, error)

// Cache is the public surface for writing and reading values. It owns an
// injected store handle and holds no state of its own beyond it; all
// counters and history live in the store, where they can be inspected and
// replayed after the fact.
type Cache struct {
	store   store.Store
	logger  zerolog.Logger
	storeOp StoreOp
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger attaches a logger for debug-level operation tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// New creates a Cache over the given store. Construction is destructive:
// the entire store is flushed, wiping prior values, counters, and history.
//
// The write path is composed once here, in fixed order: the call-count
// wrapper is outermost and the history wrapper sits inside it, so history
// records exactly what was passed to and returned from the counted
// operation.
func New(ctx context.Context, st store.Store, opts ...Option) (*Cache, error) {
	c := &Cache{
		store:  st,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := st.FlushAll(ctx); err != nil {
		return nil, fmt.Errorf("flush store: %w", err)
	}

	c.storeOp = withCallCount(st, OpStore, withCallHistory(st, OpStore, c.rawStore))
	return c, nil
}

// Store writes data under a fresh randomly generated key and returns the
// key. Every call is counted and recorded under the OpStore identity.
func (c *Cache) Store(ctx context.Context, data Value) (string, error) {
	return c.storeOp(ctx, data)
}

// rawStore is the innermost write operation: generate key, write, return.
func (c *Cache) rawStore(ctx context.Context, data Value) (string, error) {
	key := uuid.NewString()
	if err := c.store.Set(ctx, key, data.Encode()); err != nil {
		return "", err
	}
	c.logger.Debug().Str("key", key).Msg("Stored value")
	return key, nil
}

// Get fetches the raw bytes stored under key. An absent key is signalled
// by the returned bool, never by an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		MissesTotal.WithLabelValues(OpGet).Inc()
		return nil, false, nil
	}
	HitsTotal.WithLabelValues(OpGet).Inc()
	return val, true, nil
}

// GetWith fetches the raw bytes stored under key and applies transform to
// them. On an absent key the transform is not invoked. A transform failure
// is returned with found=true: the key exists, its contents just don't
// parse.
func GetWith[T any](ctx context.Context, c *Cache, key string, transform Transform[T]) (T, bool, error) {
	var zero T

	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return zero, ok, err
	}

	out, err := transform(raw)
	if err != nil {
		return zero, true, err
	}
	return out, true, nil
}

// GetString fetches the value stored under key as text.
func (c *Cache) GetString(ctx context.Context, key string) (string, bool, error) {
	return GetWith(ctx, c, key, func(raw []byte) (string, error) {
		return string(raw), nil
	})
}

// GetInt fetches the value stored under key as a base-10 integer.
// A key holding non-numeric bytes yields a *apperrors.ParseError.
func (c *Cache) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return GetWith(ctx, c, key, func(raw []byte) (int64, error) {
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return 0, apperrors.NewParseError(key, raw, err)
		}
		return n, nil
	})
}

// Contains reports whether key is present without fetching its value.
func (c *Cache) Contains(ctx context.Context, key string) (bool, error) {
	return c.store.Exists(ctx, key)
}

// Close releases the underlying store handle.
func (c *Cache) Close() error {
	return c.store.Close()
}
