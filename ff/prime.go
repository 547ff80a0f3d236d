package ff

import (
	"fmt"
	"strconv"
)

// maxPrime bounds the supported modulus so that a product of two reduced
// elements always fits a uint64 without overflow.
const maxPrime = 1 << 31

// Prime is the field of integers modulo a prime p. Elements are uint64
// values kept in [0, p) at all times.
type Prime struct {
	p uint64
}

// NewPrime constructs the field F_p. The modulus must be an actual prime
// below 2^31; both conditions are checked, so a bad modulus fails here
// rather than corrupting arithmetic later.
func NewPrime(p uint64) (*Prime, error) {
	if p < 2 {
		return nil, fmt.Errorf("ff: modulus %d is not prime", p)
	}
	if p >= maxPrime {
		return nil, fmt.Errorf("ff: modulus %d too large (limit 2^31)", p)
	}
	for d := uint64(2); d*d <= p; d++ {
		if p%d == 0 {
			return nil, fmt.Errorf("ff: modulus %d is not prime (divisible by %d)", p, d)
		}
	}
	return &Prime{p: p}, nil
}

// Modulus returns p.
func (f *Prime) Modulus() uint64 { return f.p }

func (f *Prime) Zero() uint64 { return 0 }

func (f *Prime) One() uint64 { return 1 }

// FromUint64 reduces v modulo p.
func (f *Prime) FromUint64(v uint64) uint64 { return v % f.p }

func (f *Prime) Add(a, b uint64) uint64 { return (a + b) % f.p }

func (f *Prime) Sub(a, b uint64) uint64 { return (a + f.p - b) % f.p }

func (f *Prime) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.p - a
}

func (f *Prime) Mul(a, b uint64) uint64 { return a * b % f.p }

func (f *Prime) Square(a uint64) uint64 { return a * a % f.p }

// Inverse computes a^-1 mod p with the extended Euclidean algorithm,
// tracking remainders r and Bezout coefficients t in lockstep until the
// remainder vanishes. Inverting zero is an error: gcd(0, p) = p != 1.
func (f *Prime) Inverse(a uint64) (uint64, error) {
	if a == 0 {
		return 0, ErrNotInvertible
	}
	r0, r1 := int64(f.p), int64(a)
	t0, t1 := int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, ErrNotInvertible
	}
	t0 %= int64(f.p)
	if t0 < 0 {
		t0 += int64(f.p)
	}
	return uint64(t0), nil
}

func (f *Prime) Exp(a uint64, k uint64) uint64 { return exp[uint64](f, a, k) }

func (f *Prime) Equal(a, b uint64) bool { return a == b }

func (f *Prime) IsZero(a uint64) bool { return a == 0 }

func (f *Prime) Format(a uint64) string { return strconv.FormatUint(a, 10) }

func (f *Prime) String() string { return fmt.Sprintf("F_%d", f.p) }

var _ Field[uint64] = (*Prime)(nil)
