// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fract

import (
	"errors"

	mu "github.com/avdva/fract/internal/mathutil"
)

var (
	// ErrOverflow is returned by checked operations, if the result does not fit the fraction's width.
	ErrOverflow = errors.New("value out of range")
	// ErrDivByZero is returned by checked operations, which would divide by zero.
	ErrDivByZero = errors.New("division by zero")
)

// CheckedExpand is like Expand, but returns ErrOverflow instead of wrapping.
func (f Fraction[U, F]) CheckedExpand(factor U) (Fraction[U, F], error) {
	num, numOk := mu.Mul(f.Num, factor)
	den, denOk := mu.Mul(f.Den, factor)
	if !numOk || !denOk {
		return Fraction[U, F]{}, ErrOverflow
	}
	return Fraction[U, F]{Num: num, Den: den}, nil
}

// CheckedAdd is like Add, but returns ErrOverflow instead of wrapping.
func (f Fraction[U, F]) CheckedAdd(other Fraction[U, F]) (Fraction[U, F], error) {
	l, r, err := checkedAlign(f, other)
	if err != nil {
		return Fraction[U, F]{}, err
	}
	num, ok := mu.Add(l.Num, r.Num)
	if !ok {
		return Fraction[U, F]{}, ErrOverflow
	}
	return Fraction[U, F]{Num: num, Den: l.Den}, nil
}

// CheckedSub is like Sub, but returns ErrOverflow if other > f.
func (f Fraction[U, F]) CheckedSub(other Fraction[U, F]) (Fraction[U, F], error) {
	l, r, err := checkedAlign(f, other)
	if err != nil {
		return Fraction[U, F]{}, err
	}
	num, ok := mu.Sub(l.Num, r.Num)
	if !ok {
		return Fraction[U, F]{}, ErrOverflow
	}
	return Fraction[U, F]{Num: num, Den: l.Den}, nil
}

// CheckedMul is like Mul, but returns ErrOverflow instead of wrapping.
func (f Fraction[U, F]) CheckedMul(other Fraction[U, F]) (Fraction[U, F], error) {
	num, numOk := mu.Mul(f.Num, other.Num)
	den, denOk := mu.Mul(f.Den, other.Den)
	if !numOk || !denOk {
		return Fraction[U, F]{}, ErrOverflow
	}
	return Fraction[U, F]{Num: num, Den: den}, nil
}

// CheckedDiv is like Div, but returns ErrDivByZero if other is zero,
// and ErrOverflow instead of wrapping.
func (f Fraction[U, F]) CheckedDiv(other Fraction[U, F]) (Fraction[U, F], error) {
	if other.IsZero() {
		return Fraction[U, F]{}, ErrDivByZero
	}
	return f.CheckedMul(other.Invert())
}

// CheckedReduce is like Reduce, but returns ErrDivByZero for 0/0 instead of panicking.
func (f Fraction[U, F]) CheckedReduce() (Fraction[U, F], error) {
	if f.Num == 0 && f.Den == 0 {
		return Fraction[U, F]{}, ErrDivByZero
	}
	return f.Reduce(), nil
}

// MustReduce is like CheckedReduce, but panics with ErrDivByZero for 0/0.
func (f Fraction[U, F]) MustReduce() Fraction[U, F] {
	result, err := f.CheckedReduce()
	if err != nil {
		panic(err)
	}
	return result
}

func checkedAlign[U Unsigned, F Float](l, r Fraction[U, F]) (Fraction[U, F], Fraction[U, F], error) {
	if l.Den == r.Den {
		return l, r, nil
	}
	el, err := l.CheckedExpand(r.Den)
	if err != nil {
		return l, r, err
	}
	er, err := r.CheckedExpand(l.Den)
	if err != nil {
		return l, r, err
	}
	return el, er, nil
}
