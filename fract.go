// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fract implements fractions, where both numerator and denominator
// are unsigned integers of the same fixed width.
// Values are never reduced implicitly, and all arithmetic wraps modulo 2^width,
// as the built-in unsigned types do.
package fract

import (
	mu "github.com/avdva/fract/internal/mathutil"
)

// Unsigned is a set of integer types, that can be used as a numerator and a denominator:
// uint8, uint16, uint32, uint64, and types based on them.
type Unsigned interface {
	mu.Unsigned
}

// Float is a set of types, which fractions can be converted to.
type Float interface {
	~float32 | ~float64
}

// Fract is a set of operations every fraction type supports.
// S is the fraction type itself.
type Fract[U Unsigned, F Float, S any] interface {
	Float() F
	Invert() S
	Expand(factor U) S
	Reduce() S
}

// Fraction is a Num/Den pair.
// Equality is structural, so 1/2 != 2/4 for ==, use Eq to compare values.
// Den is not validated, a zero denominator causes integer division panics
// on operations, which need to divide.
type Fraction[U Unsigned, F Float] struct {
	Num U
	Den U
}

// New returns a fraction num/den as is.
func New[U Unsigned, F Float](num, den U) Fraction[U, F] {
	return Fraction[U, F]{Num: num, Den: den}
}

// FromInt returns n/1.
func FromInt[U Unsigned, F Float](n U) Fraction[U, F] {
	return New[U, F](n, 1)
}

// Float returns Num/Den as a floating-point number.
// If Den == 0, the result is +Inf, or NaN for 0/0.
func (f Fraction[U, F]) Float() F {
	return F(f.Num) / F(f.Den)
}

// Invert returns Den/Num.
func (f Fraction[U, F]) Invert() Fraction[U, F] {
	return Fraction[U, F]{Num: f.Den, Den: f.Num}
}

// Expand multiplies both numerator and denominator by factor.
// The multiplication wraps, so the result represents the same number
// only if both products fit U.
func (f Fraction[U, F]) Expand(factor U) Fraction[U, F] {
	return Fraction[U, F]{Num: f.Num * factor, Den: f.Den * factor}
}

// Reduce divides numerator and denominator by their greatest common divisor.
// Reduce panics, if both of them are zero.
func (f Fraction[U, F]) Reduce() Fraction[U, F] {
	g := mu.GCD(f.Num, f.Den)
	return Fraction[U, F]{Num: f.Num / g, Den: f.Den / g}
}

// Add returns f+other.
// If denominators differ, each operand is expanded by the other's denominator,
// so the resulting denominator is the product of the two.
// All the operations wrap on overflow.
func (f Fraction[U, F]) Add(other Fraction[U, F]) Fraction[U, F] {
	l, r := align(f, other)
	return Fraction[U, F]{Num: l.Num + r.Num, Den: l.Den}
}

// Sub returns f-other. Denominators are aligned the same way Add does it.
// If other is greater than f, the numerator wraps.
func (f Fraction[U, F]) Sub(other Fraction[U, F]) Fraction[U, F] {
	l, r := align(f, other)
	return Fraction[U, F]{Num: l.Num - r.Num, Den: l.Den}
}

// Mul returns f*other without reduction.
func (f Fraction[U, F]) Mul(other Fraction[U, F]) Fraction[U, F] {
	return Fraction[U, F]{Num: f.Num * other.Num, Den: f.Den * other.Den}
}

// Div returns f/other, which is f*(1/other).
func (f Fraction[U, F]) Div(other Fraction[U, F]) Fraction[U, F] {
	return f.Mul(other.Invert())
}

// IsZero returns true, if the numerator is zero.
func (f Fraction[U, F]) IsZero() bool {
	return f.Num == 0
}

// IsReduced returns true, if Num and Den are coprime.
func (f Fraction[U, F]) IsReduced() bool {
	return mu.GCD(f.Num, f.Den) == 1
}

// Quo returns the integer quotient and the remainder of Num/Den.
// If Den == 0, Quo panics.
func (f Fraction[U, F]) Quo() (quo, rem U) {
	return f.Num / f.Den, f.Num % f.Den
}

// Uint returns the integer part of the fraction.
// If Den == 0, Uint panics.
func (f Fraction[U, F]) Uint() U {
	return f.Num / f.Den
}

// Cmp compares two fractions by their values.
// Returns -1 if f < other, 0 if f == other, 1 if f > other.
// The result is undefined, if any of the denominators is zero.
func (f Fraction[U, F]) Cmp(other Fraction[U, F]) int {
	return mu.MulCmp(uint64(f.Num), uint64(other.Den), uint64(other.Num), uint64(f.Den))
}

// Eq returns true, if both fractions represent the same number, so that 1/2 Eq 2/4.
func (f Fraction[U, F]) Eq(other Fraction[U, F]) bool {
	return f.Cmp(other) == 0
}

func align[U Unsigned, F Float](l, r Fraction[U, F]) (Fraction[U, F], Fraction[U, F]) {
	if l.Den != r.Den {
		l, r = l.Expand(r.Den), r.Expand(l.Den)
	}
	return l, r
}
