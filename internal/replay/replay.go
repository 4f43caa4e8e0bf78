package replay

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/susan-kimemia/alx-backend-storage/internal/cache"
	"github.com/susan-kimemia/alx-backend-storage/internal/store"
)

// Replay renders a transcript of a previously instrumented operation from
// the call counter and history recorded in the store. It is strictly
// read-only: running a replay never mutates counters or history.
type Replay struct {
	store store.Store
	out   io.Writer
}

// Option configures a Replay.
type Option func(*Replay)

// WithWriter redirects transcript output, which defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Replay) { r.out = w }
}

// New creates a Replay over the given store.
func New(st store.Store, opts ...Option) *Replay {
	r := &Replay{
		store: st,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints the transcript for the given operation identity: a header
// with the total call count, then one line per recorded call pairing the
// i-th input with the i-th output. An operation that was never called
// prints a zero-count header and nothing else. If the history lists are
// skewed (a call failed mid-recording), only the overlapping prefix is
// rendered.
func (r *Replay) Run(ctx context.Context, identity string) error {
	count, err := r.store.Counter(ctx, identity)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.out, "%s was called %d times:\n", identity, count); err != nil {
		return err
	}

	inputs, err := r.store.LRange(ctx, cache.InputsKey(identity), 0, -1)
	if err != nil {
		return err
	}
	outputs, err := r.store.LRange(ctx, cache.OutputsKey(identity), 0, -1)
	if err != nil {
		return err
	}

	n := min(len(inputs), len(outputs))
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(r.out, "%s(*%s) -> %s\n", identity, inputs[i], outputs[i]); err != nil {
			return err
		}
	}
	return nil
}
