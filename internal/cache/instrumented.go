package cache

import (
	"context"

	"github.com/susan-kimemia/alx-backend-storage/internal/store"
)

// StoreOp is the signature of the cache write path. Wrappers take a StoreOp
// and return an equivalent StoreOp with one added side effect, so the
// instrumented path is built by plain function composition with a fixed,
// visible order (see New).
type StoreOp func(ctx context.Context, data Value) (string, error)

// InputsKey returns the store key holding the recorded inputs of the
// given operation identity.
func InputsKey(identity string) string { return identity + ":inputs" }

// OutputsKey returns the store key holding the recorded outputs of the
// given operation identity.
func OutputsKey(identity string) string { return identity + ":outputs" }

// withCallCount wraps op so that every invocation first increments the
// counter stored under identity. The increment happens before op runs and
// is never rolled back: the counter tracks attempted calls, not successful
// completions. Arguments and return value pass through untouched.
func withCallCount(rec store.Store, identity string, op StoreOp) StoreOp {
	return func(ctx context.Context, data Value) (string, error) {
		if _, err := rec.Incr(ctx, identity); err != nil {
			return "", err
		}
		CallsTotal.WithLabelValues(identity).Inc()
		return op(ctx, data)
	}
}

// withCallHistory wraps op so that every invocation appends the rendered
// argument tuple to the inputs list before op runs, and the rendered
// result to the outputs list after it returns. When op fails the output
// append is skipped, leaving the lists skewed by one; Replay tolerates
// that by rendering only the overlapping prefix.
func withCallHistory(rec store.Store, identity string, op StoreOp) StoreOp {
	inputs := InputsKey(identity)
	outputs := OutputsKey(identity)

	return func(ctx context.Context, data Value) (string, error) {
		if err := rec.RPush(ctx, inputs, renderInput(data)); err != nil {
			return "", err
		}

		key, err := op(ctx, data)
		if err != nil {
			return "", err
		}

		if err := rec.RPush(ctx, outputs, key); err != nil {
			return "", err
		}
		return key, nil
	}
}

// renderInput gives the deterministic text form of the argument tuple
// recorded in history. Single-argument operations still render as a tuple
// so the transcript format stays uniform.
func renderInput(data Value) string {
	return "(" + data.String() + ")"
}
