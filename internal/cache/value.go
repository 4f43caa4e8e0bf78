package cache

import "strconv"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindText Kind = iota
	KindBinary
	KindInt
	KindFloat
)

// Value is the tagged union of data a Cache can store: text, binary,
// integer, or floating-point. The union is explicit so the store boundary
// is the only place values are serialized to bytes; callers never hand the
// cache an untyped interface value.
type Value struct {
	kind Kind
	text string
	bin  []byte
	num  int64
	fp   float64
}

// Text wraps a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Binary wraps a raw byte value. The slice is not copied.
func Binary(b []byte) Value { return Value{kind: KindBinary, bin: b} }

// Int wraps an integer value.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Float wraps a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, fp: f} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Encode serializes the value to the byte form written to the store.
// Text and binary pass through unchanged; numbers render in base 10
// (floats in shortest 'g' form), matching what the read-back transforms
// expect.
func (v Value) Encode() []byte {
	switch v.kind {
	case KindBinary:
		return v.bin
	case KindInt:
		return strconv.AppendInt(nil, v.num, 10)
	case KindFloat:
		return strconv.AppendFloat(nil, v.fp, 'g', -1, 64)
	default:
		return []byte(v.text)
	}
}

// String returns a stable human-readable rendering used by the call
// history transcript. Text and binary are quoted, numbers print bare.
func (v Value) String() string {
	switch v.kind {
	case KindBinary:
		return strconv.Quote(string(v.bin))
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.fp, 'g', -1, 64)
	default:
		return strconv.Quote(v.text)
	}
}
