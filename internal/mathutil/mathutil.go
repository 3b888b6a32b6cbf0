package mathutil

import (
	"math/bits"
)

// Unsigned is a set of fixed-width unsigned integer types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxOf returns the maximum value of U.
func MaxOf[U Unsigned]() U {
	return ^U(0)
}

// GCD returns the greatest common divisor of a and b.
// GCD(a, 0) = a, GCD(0, b) = b, and GCD(0, 0) = 0.
func GCD[U Unsigned](a, b U) U {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
// If either of them is zero, the result is zero.
// The result wraps, if it does not fit U.
func LCM[U Unsigned](a, b U) U {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// Mul returns a*b modulo the width of U.
// ok is false, if the exact product does not fit U.
func Mul[U Unsigned](a, b U) (product U, ok bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return U(lo), hi == 0 && lo <= uint64(MaxOf[U]())
}

// Add returns a+b modulo the width of U.
// ok is false, if the exact sum does not fit U.
func Add[U Unsigned](a, b U) (sum U, ok bool) {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	return U(s), carry == 0 && s <= uint64(MaxOf[U]())
}

// Sub returns a-b modulo the width of U.
// ok is false, if b > a.
func Sub[U Unsigned](a, b U) (diff U, ok bool) {
	return a - b, a >= b
}

// MulCmp compares a*b and c*d without losing precision.
// Returns -1 if a*b < c*d, 0 if a*b == c*d, 1 if a*b > c*d.
func MulCmp(a, b, c, d uint64) int {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)
	if r := uint64Cmp(hi1, hi2); r != 0 {
		return r
	}
	return uint64Cmp(lo1, lo2)
}

func uint64Cmp(a, b uint64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
