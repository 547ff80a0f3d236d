package ff

import "fmt"

// Extension is the field F[x]/(m) of polynomials over a base field
// reduced modulo a fixed polynomial m. Elements are Poly values of
// degree strictly below deg(m), kept reduced after every operation.
//
// The modulus must be irreducible over the base field for the result to
// be a field. That property is not verified here: constructing an
// Extension over a reducible modulus yields a ring with zero divisors,
// and Inverse surfaces ErrNotInvertible the first time a zero divisor is
// inverted.
type Extension[E any] struct {
	base    Field[E]
	ring    *PolyRing[E]
	modulus Poly[E]
}

// NewExtension constructs F[x]/(modulus) over the given base field. The
// modulus must have degree at least 1.
func NewExtension[E any](base Field[E], modulus Poly[E]) (*Extension[E], error) {
	if modulus.IsZero() || modulus.Degree() < 1 {
		return nil, fmt.Errorf("ff: extension modulus must have degree >= 1")
	}
	return &Extension[E]{
		base:    base,
		ring:    NewPolyRing(base),
		modulus: modulus,
	}, nil
}

// Base returns the coefficient field.
func (f *Extension[E]) Base() Field[E] { return f.base }

// Ring returns the polynomial ring the elements live in, handy for
// building element values.
func (f *Extension[E]) Ring() *PolyRing[E] { return f.ring }

// Modulus returns the defining polynomial.
func (f *Extension[E]) Modulus() Poly[E] { return f.modulus }

// Degree of the extension, i.e. the degree of the modulus polynomial.
func (f *Extension[E]) Degree() int { return f.modulus.Degree() }

// Embed lifts a base-field element into the extension as a degree-0
// polynomial.
func (f *Extension[E]) Embed(a E) Poly[E] { return f.ring.Constant(a) }

// ExtractBase is the inverse of Embed. It fails when the element has a
// non-constant part and therefore no base-field preimage.
func (f *Extension[E]) ExtractBase(a Poly[E]) (E, error) {
	if a.Degree() > 0 {
		var zero E
		return zero, fmt.Errorf("ff: element %s is not in the base field", f.Format(a))
	}
	return f.ring.Coeff(a, 0), nil
}

// Reduce maps an arbitrary polynomial to its canonical representative
// modulo the defining polynomial.
func (f *Extension[E]) Reduce(a Poly[E]) Poly[E] {
	_, rem, err := f.ring.DivMod(a, f.modulus)
	if err != nil {
		// The modulus is non-zero by construction.
		panic(fmt.Sprintf("ff: reduction failed: %v", err))
	}
	return rem
}

func (f *Extension[E]) Zero() Poly[E] { return f.ring.Zero() }

func (f *Extension[E]) One() Poly[E] { return f.ring.One() }

func (f *Extension[E]) FromUint64(v uint64) Poly[E] {
	return f.Embed(f.base.FromUint64(v))
}

func (f *Extension[E]) Add(a, b Poly[E]) Poly[E] {
	// Degrees stay below deg(m); no reduction needed.
	return f.ring.Add(a, b)
}

func (f *Extension[E]) Sub(a, b Poly[E]) Poly[E] {
	return f.ring.Sub(a, b)
}

func (f *Extension[E]) Neg(a Poly[E]) Poly[E] {
	return f.ring.Neg(a)
}

func (f *Extension[E]) Mul(a, b Poly[E]) Poly[E] {
	return f.Reduce(f.ring.Mul(a, b))
}

func (f *Extension[E]) Square(a Poly[E]) Poly[E] {
	return f.Mul(a, a)
}

// Inverse runs the extended Euclidean algorithm on (modulus, a) over the
// polynomial ring, iterating (remainder, Bezout) pairs with DivMod in
// place of integer division. For an irreducible modulus and non-zero a
// the terminal remainder is a non-zero constant c, and the inverse is
// the Bezout coefficient scaled by c^-1 in the base field.
func (f *Extension[E]) Inverse(a Poly[E]) (Poly[E], error) {
	if a.IsZero() {
		return Poly[E]{}, ErrNotInvertible
	}
	r0, r1 := f.modulus, a
	t0, t1 := f.ring.Zero(), f.ring.One()
	for !r1.IsZero() {
		q, rem, err := f.ring.DivMod(r0, r1)
		if err != nil {
			return Poly[E]{}, err
		}
		r0, r1 = r1, rem
		t0, t1 = t1, f.ring.Sub(t0, f.ring.Mul(q, t1))
	}
	if r0.Degree() != 0 {
		// gcd(a, modulus) is non-constant: the modulus is reducible
		// and a is a zero divisor.
		return Poly[E]{}, ErrNotInvertible
	}
	cInv, err := f.base.Inverse(f.ring.Leading(r0))
	if err != nil {
		return Poly[E]{}, err
	}
	return f.Reduce(f.ring.MulScalar(t0, cInv)), nil
}

func (f *Extension[E]) Exp(a Poly[E], k uint64) Poly[E] {
	return exp[Poly[E]](f, a, k)
}

func (f *Extension[E]) Equal(a, b Poly[E]) bool { return f.ring.Equal(a, b) }

func (f *Extension[E]) IsZero(a Poly[E]) bool { return a.IsZero() }

func (f *Extension[E]) Format(a Poly[E]) string { return f.ring.Format(a) }

var _ Field[Poly[uint64]] = (*Extension[uint64])(nil)
