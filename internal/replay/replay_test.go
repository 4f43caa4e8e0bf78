package replay

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/susan-kimemia/alx-backend-storage/internal/cache"
	"github.com/susan-kimemia/alx-backend-storage/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.New("memory", store.ProviderConfig{})
	if err != nil {
		t.Fatalf("New memory store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReplay_NoRecordedCalls(t *testing.T) {
	s := newTestStore(t)
	var buf bytes.Buffer
	r := New(s, WithWriter(&buf))

	if err := r.Run(context.Background(), "Cache.Store"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "Cache.Store was called 0 times:\n"
	if buf.String() != want {
		t.Fatalf("Output = %q, want %q", buf.String(), want)
	}
}

func TestReplay_Transcript(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := cache.New(ctx, s)
	if err != nil {
		t.Fatalf("New cache: %v", err)
	}

	k1, err := c.Store(ctx, cache.Text("foo"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	k2, err := c.Store(ctx, cache.Int(100))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	var buf bytes.Buffer
	r := New(s, WithWriter(&buf))
	if err := r.Run(ctx, cache.OpStore); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := fmt.Sprintf(
		"Cache.Store was called 2 times:\n"+
			"Cache.Store(*(\"foo\")) -> %s\n"+
			"Cache.Store(*(100)) -> %s\n",
		k1, k2)
	if buf.String() != want {
		t.Fatalf("Output = %q, want %q", buf.String(), want)
	}
}

func TestReplay_SkewedHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Simulate a crash mid-call: two inputs recorded, only one output.
	const op = "Cache.Store"
	if _, err := s.Incr(ctx, op); err != nil {
		t.Fatalf("Incr: %v", err)
	}
	if _, err := s.Incr(ctx, op); err != nil {
		t.Fatalf("Incr: %v", err)
	}
	for _, in := range []string{`("a")`, `("b")`} {
		if err := s.RPush(ctx, cache.InputsKey(op), in); err != nil {
			t.Fatalf("RPush: %v", err)
		}
	}
	if err := s.RPush(ctx, cache.OutputsKey(op), "key-1"); err != nil {
		t.Fatalf("RPush: %v", err)
	}

	var buf bytes.Buffer
	r := New(s, WithWriter(&buf))
	if err := r.Run(ctx, op); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header + 1 transcript line, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "Cache.Store was called 2 times:" {
		t.Errorf("Header = %q", lines[0])
	}
	if lines[1] != `Cache.Store(*("a")) -> key-1` {
		t.Errorf("Transcript line = %q", lines[1])
	}
}

func TestReplay_ReadOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := cache.New(ctx, s)
	if err != nil {
		t.Fatalf("New cache: %v", err)
	}
	if _, err := c.Store(ctx, cache.Text("x")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	var first, second bytes.Buffer
	if err := New(s, WithWriter(&first)).Run(ctx, cache.OpStore); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := New(s, WithWriter(&second)).Run(ctx, cache.OpStore); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if first.String() != second.String() {
		t.Fatalf("Replay mutated state: first %q, second %q", first.String(), second.String())
	}
	if n, _ := s.Counter(ctx, cache.OpStore); n != 1 {
		t.Fatalf("Counter = %d after replays, want 1", n)
	}
}
