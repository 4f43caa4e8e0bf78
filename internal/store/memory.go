package store

import (
	"context"
	"sync"
)

func init() {
	Register("memory", newMemoryStore)
}

// memoryStore implements the Store interface with in-process maps guarded
// by a single mutex, which gives the same atomicity for counters and list
// appends that Redis provides server-side. Values, counters, and lists
// live in separate maps but share one namespace lifecycle: FlushAll clears
// all three.
type memoryStore struct {
	mu       sync.Mutex
	values   map[string][]byte
	counters map[string]int64
	lists    map[string][]string
}

func newMemoryStore(cfg ProviderConfig) (Store, error) {
	return &memoryStore{
		values:   make(map[string][]byte),
		counters: make(map[string]int64),
		lists:    make(map[string][]string),
	}, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(value))
	copy(buf, value)
	m.values[key] = buf
	return nil
}

func (m *memoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	val, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	buf := make([]byte, len(val))
	copy(buf, val)
	return buf, true, nil
}

func (m *memoryStore) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]
	return ok, nil
}

func (m *memoryStore) Incr(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[name]++
	return m.counters[name], nil
}

func (m *memoryStore) Counter(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counters[name], nil
}

func (m *memoryStore) RPush(ctx context.Context, list string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[list] = append(m.lists[list], value)
	return nil
}

func (m *memoryStore) LRange(ctx context.Context, list string, start, stop int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elems := m.lists[list]
	n := int64(len(elems))

	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if start >= n || stop < start {
		return []string{}, nil
	}
	if stop >= n {
		stop = n - 1
	}

	out := make([]string, stop-start+1)
	copy(out, elems[start:stop+1])
	return out, nil
}

func (m *memoryStore) FlushAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = make(map[string][]byte)
	m.counters = make(map[string]int64)
	m.lists = make(map[string][]string)
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
