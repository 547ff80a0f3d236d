package ff

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// newF13x4 builds F_13[x]/(x^4 + 2), the TinyJubJub extension field.
func newF13x4(t *testing.T) *Extension[uint64] {
	t.Helper()
	base, err := NewPrime(13)
	require.NoError(t, err)
	ring := NewPolyRing[uint64](base)
	ext, err := NewExtension[uint64](base, ring.NewFromUint64(2, 0, 0, 0, 1))
	require.NoError(t, err)
	return ext
}

func TestNewExtensionRejectsConstantModulus(t *testing.T) {
	base, err := NewPrime(13)
	require.NoError(t, err)
	ring := NewPolyRing[uint64](base)

	_, err = NewExtension[uint64](base, ring.Zero())
	require.Error(t, err)
	_, err = NewExtension[uint64](base, ring.NewFromUint64(7))
	require.Error(t, err)
}

func TestExtensionKnownProduct(t *testing.T) {
	// (7 + 3x) * (5 + 6x) mod (x^2 + 2) over F_13 equals 12 + 5x.
	base, err := NewPrime(13)
	require.NoError(t, err)
	ring := NewPolyRing[uint64](base)
	ext, err := NewExtension[uint64](base, ring.NewFromUint64(2, 0, 1))
	require.NoError(t, err)

	got := ext.Mul(ring.NewFromUint64(7, 3), ring.NewFromUint64(5, 6))
	require.True(t, ext.Equal(got, ring.NewFromUint64(12, 5)), "got %s", ext.Format(got))
}

func TestExtensionEmbedRoundTrip(t *testing.T) {
	ext := newF13x4(t)

	for v := uint64(0); v < 13; v++ {
		e := ext.Embed(v)
		require.LessOrEqual(t, e.Degree(), 0)
		back, err := ext.ExtractBase(e)
		require.NoError(t, err)
		require.Equal(t, v, back)
	}

	_, err := ext.ExtractBase(ext.Ring().NewFromUint64(0, 1))
	require.Error(t, err, "x has no base-field preimage")
}

func TestExtensionInverseOfZeroFails(t *testing.T) {
	ext := newF13x4(t)

	_, err := ext.Inverse(ext.Zero())
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestExtensionReducibleModulusSurfacesZeroDivisors(t *testing.T) {
	// x^2 - 1 = (x-1)(x+1) is reducible over F_13, so the quotient is a
	// ring with zero divisors, not a field. Inverting the zero divisor
	// x - 1 must fail loudly instead of returning garbage.
	base, err := NewPrime(13)
	require.NoError(t, err)
	ring := NewPolyRing[uint64](base)
	ext, err := NewExtension[uint64](base, ring.NewFromUint64(12, 0, 1))
	require.NoError(t, err, "reducibility is a caller contract, not rejected eagerly")

	_, err = ext.Inverse(ring.NewFromUint64(12, 1))
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestExtensionFieldAxioms(t *testing.T) {
	ext := newF13x4(t)
	ring := ext.Ring()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	elem := gen.SliceOfN(4, gen.UInt64Range(0, 12)).Map(func(cs []uint64) Poly[uint64] {
		return ring.NewFromUint64(cs...)
	})

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Poly[uint64]) bool {
			return ext.Equal(ext.Mul(a, ext.Add(b, c)), ext.Add(ext.Mul(a, b), ext.Mul(a, c)))
		},
		elem, elem, elem,
	))
	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c Poly[uint64]) bool {
			return ext.Equal(ext.Mul(a, ext.Mul(b, c)), ext.Mul(ext.Mul(a, b), c))
		},
		elem, elem, elem,
	))
	properties.Property("a * a^-1 = 1 for a != 0", prop.ForAll(
		func(a Poly[uint64]) bool {
			if ext.IsZero(a) {
				return true
			}
			inv, err := ext.Inverse(a)
			return err == nil && ext.Equal(ext.Mul(a, inv), ext.One())
		},
		elem,
	))
	properties.Property("results stay reduced below the modulus degree", prop.ForAll(
		func(a, b Poly[uint64]) bool {
			return ext.Mul(a, b).Degree() < ext.Degree()
		},
		elem, elem,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestExtensionExpMatchesRepeatedMul(t *testing.T) {
	ext := newF13x4(t)
	a := ext.Ring().NewFromUint64(7, 0, 4)

	acc := ext.One()
	for k := uint64(0); k <= 10; k++ {
		require.True(t, ext.Equal(ext.Exp(a, k), acc), "exponent %d", k)
		acc = ext.Mul(acc, a)
	}
}

func TestExtensionTower(t *testing.T) {
	// F_13 -> F_13[x]/(x^2 + 2) -> (F_13^2)[y]/(y^2 - x), a degree-2
	// extension of a degree-2 extension. Only the composability is under
	// test: arithmetic must keep delegating through the levels.
	base, err := NewPrime(13)
	require.NoError(t, err)
	ring := NewPolyRing[uint64](base)
	mid, err := NewExtension[uint64](base, ring.NewFromUint64(2, 0, 1))
	require.NoError(t, err)

	midRing := NewPolyRing[Poly[uint64]](mid)
	// y^2 - x: coefficients are mid-field elements.
	x := mid.Ring().NewFromUint64(0, 1)
	modulus := midRing.New(mid.Neg(x), mid.Zero(), mid.One())
	top, err := NewExtension[Poly[uint64]](mid, modulus)
	require.NoError(t, err)

	// y * y = x in the top field.
	y := midRing.New(mid.Zero(), mid.One())
	got := top.Mul(y, y)
	require.True(t, top.Equal(got, top.Embed(x)))

	// And y is invertible: y^-1 * y = 1.
	inv, err := top.Inverse(y)
	require.NoError(t, err)
	require.True(t, top.Equal(top.Mul(inv, y), top.One()))
}
