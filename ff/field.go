// Package ff implements finite-field arithmetic over tiny moduli: a prime
// base field, polynomials over an arbitrary coefficient field, and field
// extensions built as polynomials modulo an irreducible polynomial.
//
// Fields are descriptor objects: the modulus is fixed at construction and all
// elements of a field are plain immutable values interpreted relative to
// their descriptor. Extensions are generic over their coefficient field, so
// towers of extensions compose naturally.
package ff

import (
	"errors"
	"math/bits"
)

var (
	// ErrNotInvertible is returned when the multiplicative inverse of the
	// additive identity (or, in a ring with zero divisors, of a zero
	// divisor) is requested.
	ErrNotInvertible = errors.New("ff: element is not invertible")

	// ErrDivisionByZero is returned by polynomial long division when the
	// divisor is the zero polynomial.
	ErrDivisionByZero = errors.New("ff: division by zero polynomial")
)

// Field describes arithmetic over a finite field with element type E.
// Implementations keep every result in reduced canonical form, so two
// elements are equal exactly when Equal reports true on their values.
type Field[E any] interface {
	Zero() E
	One() E

	// FromUint64 reduces an unsigned integer into the field. For an
	// extension this is the scalar embedded as a degree-0 polynomial.
	FromUint64(v uint64) E

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	Square(a E) E

	// Inverse returns the multiplicative inverse of a, or
	// ErrNotInvertible when a is zero (or a zero divisor, should the
	// field have been constructed over a reducible modulus).
	Inverse(a E) (E, error)

	// Exp raises a to the k-th power. Exp(a, 0) is One for every a.
	Exp(a E, k uint64) E

	Equal(a, b E) bool
	IsZero(a E) bool

	// Format renders a for logs and error messages.
	Format(a E) string
}

// exp is the square-and-multiply shared by every field implementation.
// The exponent bits are walked from the most significant one down: the
// leading 1 seeds the accumulator with the base itself, then each further
// bit squares the accumulator and multiplies the base back in when set.
func exp[E any](f Field[E], a E, k uint64) E {
	if k == 0 {
		return f.One()
	}
	acc := a
	for i := bits.Len64(k) - 2; i >= 0; i-- {
		acc = f.Square(acc)
		if k>>uint(i)&1 == 1 {
			acc = f.Mul(acc, a)
		}
	}
	return acc
}
