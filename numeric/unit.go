// Package numeric implements the engine's fixed-point arithmetic: a Q16.16
// scalar and the vector/matrix algebra built on it. Every operation is
// defined purely in terms of int32/int64 so two processes that perform the
// same sequence of operations produce bit-identical results, regardless of
// host float behavior.
package numeric

import (
	"golang.org/x/exp/constraints"
)

const fracBits = 16

// Unit is a Q16.16 signed fixed-point number: a 32-bit two's-complement
// integer i representing i/65536. Overflow wraps silently, matching Go's
// defined wraparound semantics for fixed-width integers; callers are
// responsible for staying within the safe range (see package-level
// determinism notes in the design doc).
type Unit int32

const (
	Zero   Unit = 0
	One    Unit = 1 << fracBits
	NegOne Unit = -One
	Half   Unit = One / 2
)

// Epsilon is the default near-zero tolerance used throughout geometry for
// degenerate-length checks (e.g. zero-length segments, and the axis-length
// cutoff that skips near-parallel SAT axes in OBB-OBB).
const Epsilon Unit = One / 1000

// pi is the Q16.16 encoding of math.Pi, rounded to the nearest
// representable value, so no runtime float operation ever touches the
// simulation core.
const pi Unit = 205887

// FromInt lifts a whole number into Q16.16.
func FromInt(i int32) Unit { return Unit(i) << fracBits }

// FromFloat32 lifts authoring-time data (level content, randomized test
// fixtures) into Q16.16. This is a one-way boundary: simulation results
// must never round-trip back through a float.
func FromFloat32(f float32) Unit { return Unit(f * float32(One)) }

func (u Unit) Add(v Unit) Unit { return u + v }
func (u Unit) Sub(v Unit) Unit { return u - v }
func (u Unit) Neg() Unit       { return -u }

// Mul computes the 64-bit product and shifts right by 16, truncating toward
// negative infinity at the shift (Go's arithmetic right shift on a signed
// value does exactly this).
func (u Unit) Mul(v Unit) Unit {
	return Unit((int64(u) * int64(v)) >> fracBits)
}

// Div shifts the numerator left by 16 before dividing, truncating toward
// zero. Division by zero is not guarded; the caller must not divide by
// zero (Vec3.Normalize short-circuits before ever calling this on a zero
// length).
func (u Unit) Div(v Unit) Unit {
	return Unit((int64(u) << fracBits) / int64(v))
}

// Abs returns the absolute value.
func Abs(u Unit) Unit {
	if u < 0 {
		return -u
	}
	return u
}

// Sqrt returns the fixed-point square root: an integer square root taken on
// the raw value pre-shifted into the result's fractional range.
func (u Unit) Sqrt() Unit {
	if u <= 0 {
		return 0
	}
	return Unit(isqrt(uint64(u) << fracBits))
}

// isqrt is Newton's method on unsigned 64-bit integers.
func isqrt(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}

// Int rounds toward negative infinity to a whole number (arithmetic shift),
// so -1.5 becomes -2.
func (u Unit) Int() int32 { return int32(u) >> fracBits }

// Float32 is a lossy conversion used only at the debug-draw boundary. The
// result must never flow back into the simulation core.
func (u Unit) Float32() float32 { return float32(u) / float32(One) }

// Clamp restricts v to [lo, hi]. Defined once here and used by the
// geometry closest-point helpers rather than hand-rolled there.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
