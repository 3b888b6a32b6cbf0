package fract

type (
	// Fraction8 is a fraction of two uint8 numbers.
	Fraction8 = Fraction[uint8, float32]
	// Fraction16 is a fraction of two uint16 numbers.
	Fraction16 = Fraction[uint16, float32]
	// Fraction32 is a fraction of two uint32 numbers.
	Fraction32 = Fraction[uint32, float32]
	// Fraction64 is a fraction of two uint64 numbers.
	Fraction64 = Fraction[uint64, float64]
)

var (
	_ Fract[uint8, float32, Fraction8]   = Fraction8{}
	_ Fract[uint16, float32, Fraction16] = Fraction16{}
	_ Fract[uint32, float32, Fraction32] = Fraction32{}
	_ Fract[uint64, float64, Fraction64] = Fraction64{}
)

// New8 returns num/den as a Fraction8.
func New8(num, den uint8) Fraction8 {
	return New[uint8, float32](num, den)
}

// New16 returns num/den as a Fraction16.
func New16(num, den uint16) Fraction16 {
	return New[uint16, float32](num, den)
}

// New32 returns num/den as a Fraction32.
func New32(num, den uint32) Fraction32 {
	return New[uint32, float32](num, den)
}

// New64 returns num/den as a Fraction64.
func New64(num, den uint64) Fraction64 {
	return New[uint64, float64](num, den)
}

// FromUint8 returns n/1.
func FromUint8(n uint8) Fraction8 {
	return FromInt[uint8, float32](n)
}

// FromUint16 returns n/1.
func FromUint16(n uint16) Fraction16 {
	return FromInt[uint16, float32](n)
}

// FromUint32 returns n/1.
func FromUint32(n uint32) Fraction32 {
	return FromInt[uint32, float32](n)
}

// FromUint64 returns n/1.
func FromUint64(n uint64) Fraction64 {
	return FromInt[uint64, float64](n)
}
