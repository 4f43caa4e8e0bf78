package store

import "context"

// Store defines the key-value backend the cache layer is built on.
// Implementations may keep data in-process or in an external server like
// Redis/Valkey; either way the counter and list primitives must be atomic,
// since the instrumentation layer relies on them without adding locking
// of its own.
type Store interface {
	// Set stores a value under the given key, overwriting any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Get retrieves a value by key. Returns the value and true if found,
	// or nil and false if the key is absent. An absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Exists reports whether a key is present without fetching its value.
	Exists(ctx context.Context, key string) (bool, error)

	// Incr atomically increments the named integer counter by one,
	// creating it at 0 first if absent, and returns the new value.
	Incr(ctx context.Context, name string) (int64, error)

	// Counter reads the current value of the named counter.
	// An absent counter reads as 0.
	Counter(ctx context.Context, name string) (int64, error)

	// RPush atomically appends a value to the tail of the named list,
	// creating the list if absent.
	RPush(ctx context.Context, list string, value string) error

	// LRange returns the list elements between start and stop inclusive.
	// Negative indices count from the tail; stop = -1 means through the
	// last element. An absent list yields an empty slice.
	LRange(ctx context.Context, list string, start, stop int64) ([]string, error)

	// FlushAll removes every key, counter, and list from the store.
	FlushAll(ctx context.Context) error

	// Close releases any resources held by the store (e.g., network
	// connections). For in-memory stores, this is a no-op.
	Close() error
}
