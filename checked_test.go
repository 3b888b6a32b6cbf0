// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fract

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedExpand(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f      Fraction8
		factor uint8
		result Fraction8
		err    error
	}{
		{New8(8, 10), 10, New8(80, 100), nil},
		{New8(100, 10), 2, New8(200, 20), nil},
		{New8(200, 10), 2, Fraction8{}, ErrOverflow},
		{New8(1, 200), 2, Fraction8{}, ErrOverflow},
		{New8(200, 10), 0, New8(0, 0), nil},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := test.f.CheckedExpand(test.factor)
			a.Equal(test.err, err)
			a.Equal(test.result, result)
		})
	}
	_, err := New64(math.MaxUint64, 3).CheckedExpand(2)
	a.Equal(ErrOverflow, err)
}

func TestCheckedAdd(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, result Fraction8
		err          error
	}{
		{New8(1, 2), New8(9, 10), New8(28, 20), nil},
		{New8(200, 7), New8(55, 7), New8(255, 7), nil},
		{New8(200, 7), New8(56, 7), Fraction8{}, ErrOverflow},
		{New8(1, 20), New8(1, 30), Fraction8{}, ErrOverflow},
		{New8(1, 16), New8(1, 32), Fraction8{}, ErrOverflow},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := test.a.CheckedAdd(test.b)
			a.Equal(test.err, err)
			a.Equal(test.result, result)
		})
	}
}

func TestCheckedSub(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, result Fraction16
		err          error
	}{
		{New16(4, 2), New16(9, 10), New16(22, 20), nil},
		{New16(3, 7), New16(3, 7), New16(0, 7), nil},
		{New16(1, 2), New16(9, 10), Fraction16{}, ErrOverflow},
		{New16(1, 300), New16(1, 400), Fraction16{}, ErrOverflow},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := test.a.CheckedSub(test.b)
			a.Equal(test.err, err)
			a.Equal(test.result, result)
		})
	}
}

func TestCheckedMul(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, result Fraction64
		err          error
	}{
		{New64(2, 5), New64(4, 2), New64(8, 10), nil},
		{New64(math.MaxUint64, 1), New64(1, 1), New64(math.MaxUint64, 1), nil},
		{New64(math.MaxUint64, 1), New64(2, 1), Fraction64{}, ErrOverflow},
		{New64(1, 1 << 32), New64(1, 1 << 32), Fraction64{}, ErrOverflow},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := test.a.CheckedMul(test.b)
			a.Equal(test.err, err)
			a.Equal(test.result, result)
		})
	}
}

func TestCheckedDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, result Fraction32
		err          error
	}{
		{New32(1, 2), New32(9, 10), New32(10, 18), nil},
		{New32(1, 2), New32(0, 3), Fraction32{}, ErrDivByZero},
		{New32(math.MaxUint32, 1), New32(1, 2), Fraction32{}, ErrOverflow},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			result, err := test.a.CheckedDiv(test.b)
			a.Equal(test.err, err)
			a.Equal(test.result, result)
		})
	}
}

func TestCheckedReduce(t *testing.T) {
	a := assert.New(t)
	r, err := New16(10, 18).CheckedReduce()
	a.NoError(err)
	a.Equal(New16(5, 9), r)

	_, err = New16(0, 0).CheckedReduce()
	a.Equal(ErrDivByZero, err)

	a.Equal(New8(5, 9), New8(10, 18).MustReduce())
	a.PanicsWithValue(ErrDivByZero, func() {
		New8(0, 0).MustReduce()
	})
}

func TestCheckedMatchesBaseline(t *testing.T) {
	a := assert.New(t)
	for n1 := 0; n1 < 16; n1++ {
		for d1 := 1; d1 < 16; d1++ {
			for n2 := 0; n2 < 16; n2++ {
				for d2 := 1; d2 < 16; d2++ {
					f1, f2 := New8(uint8(n1), uint8(d1)), New8(uint8(n2), uint8(d2))
					if r, err := f1.CheckedAdd(f2); err == nil {
						a.Equal(f1.Add(f2), r)
					}
					if r, err := f1.CheckedSub(f2); err == nil {
						a.Equal(f1.Sub(f2), r)
					} else {
						a.Equal(-1, f1.Cmp(f2))
					}
					r, err := f1.CheckedMul(f2)
					if a.NoError(err) {
						a.Equal(f1.Mul(f2), r)
					}
				}
			}
		}
	}
}
