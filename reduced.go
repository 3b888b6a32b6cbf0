// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fract

import (
	mu "github.com/avdva/fract/internal/mathutil"
)

// AddReduced returns f+other in lowest terms.
// Unlike Add, operands are aligned to the least common multiple of the denominators,
// which makes overflows less likely. The result still wraps, if the lcm or
// any of the intermediate products do not fit U, but both operands are always
// scaled to the same denominator.
// Zero denominators are not supported, and may lead to a division by zero panic.
func (f Fraction[U, F]) AddReduced(other Fraction[U, F]) Fraction[U, F] {
	l, r := alignLCM(f, other)
	return Fraction[U, F]{Num: l.Num + r.Num, Den: l.Den}.Reduce()
}

// SubReduced returns f-other in lowest terms. See AddReduced.
// If other is greater than f, the numerator wraps.
func (f Fraction[U, F]) SubReduced(other Fraction[U, F]) Fraction[U, F] {
	l, r := alignLCM(f, other)
	return Fraction[U, F]{Num: l.Num - r.Num, Den: l.Den}.Reduce()
}

// MulReduced returns f*other in lowest terms.
// Both operands are reduced and cross-cancelled before multiplication,
// so the result wraps only if the reduced product does not fit U.
// MulReduced panics, if any of the operands is 0/0, as Reduce does.
func (f Fraction[U, F]) MulReduced(other Fraction[U, F]) Fraction[U, F] {
	l, r := f.Reduce(), other.Reduce()
	g1, g2 := mu.GCD(l.Num, r.Den), mu.GCD(r.Num, l.Den)
	return Fraction[U, F]{
		Num: (l.Num / g1) * (r.Num / g2),
		Den: (l.Den / g2) * (r.Den / g1),
	}
}

// DivReduced returns f/other in lowest terms. See MulReduced.
// If other is zero, the result has a zero denominator,
// or DivReduced panics, if f is zero too.
func (f Fraction[U, F]) DivReduced(other Fraction[U, F]) Fraction[U, F] {
	return f.MulReduced(other.Invert())
}

func alignLCM[U Unsigned, F Float](l, r Fraction[U, F]) (Fraction[U, F], Fraction[U, F]) {
	if l.Den == r.Den {
		return l, r
	}
	g := mu.GCD(l.Den, r.Den)
	return l.Expand(r.Den / g), r.Expand(l.Den / g)
}
