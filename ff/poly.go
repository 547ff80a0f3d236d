package ff

import (
	"fmt"
	"strings"
)

// Poly is a polynomial in one indeterminate with coefficients of type E.
// coeffs[i] is the coefficient of x^i. The slice carries no trailing zero
// coefficients; the zero polynomial is the empty slice. Polys are values:
// operations return fresh polynomials and never alias their inputs.
type Poly[E any] struct {
	coeffs []E
}

// Degree of the polynomial. The zero polynomial has degree 0 by
// convention (there is no highest non-zero term to point at).
func (p Poly[E]) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly[E]) IsZero() bool { return len(p.coeffs) == 0 }

// Coeffs returns a copy of the coefficient slice, lowest power first.
// Empty for the zero polynomial.
func (p Poly[E]) Coeffs() []E {
	out := make([]E, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// PolyRing provides polynomial arithmetic over a coefficient field. All
// coefficient operations delegate to the field, so the ring works for any
// base field, including extensions.
type PolyRing[E any] struct {
	coeff Field[E]
}

// NewPolyRing returns the ring of polynomials with coefficients in f.
func NewPolyRing[E any](f Field[E]) *PolyRing[E] {
	return &PolyRing[E]{coeff: f}
}

// CoeffField returns the coefficient field.
func (r *PolyRing[E]) CoeffField() Field[E] { return r.coeff }

// New builds a normalized polynomial from coefficients, lowest power
// first. Coefficients are reduced into the field before trimming.
func (r *PolyRing[E]) New(coeffs ...E) Poly[E] {
	c := make([]E, len(coeffs))
	copy(c, coeffs)
	return r.normalize(c)
}

// NewFromUint64 builds a polynomial from integer coefficients, lowest
// power first, each reduced into the coefficient field.
func (r *PolyRing[E]) NewFromUint64(coeffs ...uint64) Poly[E] {
	c := make([]E, len(coeffs))
	for i, v := range coeffs {
		c[i] = r.coeff.FromUint64(v)
	}
	return r.normalize(c)
}

// normalize strips trailing zero coefficients. Takes ownership of c.
func (r *PolyRing[E]) normalize(c []E) Poly[E] {
	n := len(c)
	for n > 0 && r.coeff.IsZero(c[n-1]) {
		n--
	}
	return Poly[E]{coeffs: c[:n]}
}

// Zero returns the zero polynomial.
func (r *PolyRing[E]) Zero() Poly[E] { return Poly[E]{} }

// One returns the constant polynomial 1.
func (r *PolyRing[E]) One() Poly[E] {
	return Poly[E]{coeffs: []E{r.coeff.One()}}
}

// Constant returns the degree-0 polynomial with the given value, or the
// zero polynomial when the value is zero.
func (r *PolyRing[E]) Constant(v E) Poly[E] {
	if r.coeff.IsZero(v) {
		return Poly[E]{}
	}
	return Poly[E]{coeffs: []E{v}}
}

// Coeff returns the coefficient of x^i, zero for i beyond the degree.
func (r *PolyRing[E]) Coeff(p Poly[E], i int) E {
	if i < 0 || i >= len(p.coeffs) {
		return r.coeff.Zero()
	}
	return p.coeffs[i]
}

// Leading returns the leading coefficient, zero for the zero polynomial.
func (r *PolyRing[E]) Leading(p Poly[E]) E {
	if len(p.coeffs) == 0 {
		return r.coeff.Zero()
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Add returns a + b, coefficient-wise with the shorter operand padded.
func (r *PolyRing[E]) Add(a, b Poly[E]) Poly[E] {
	n := max(len(a.coeffs), len(b.coeffs))
	c := make([]E, n)
	for i := 0; i < n; i++ {
		c[i] = r.coeff.Add(r.Coeff(a, i), r.Coeff(b, i))
	}
	return r.normalize(c)
}

// Sub returns a - b.
func (r *PolyRing[E]) Sub(a, b Poly[E]) Poly[E] {
	n := max(len(a.coeffs), len(b.coeffs))
	c := make([]E, n)
	for i := 0; i < n; i++ {
		c[i] = r.coeff.Sub(r.Coeff(a, i), r.Coeff(b, i))
	}
	return r.normalize(c)
}

// Neg returns -a.
func (r *PolyRing[E]) Neg(a Poly[E]) Poly[E] {
	c := make([]E, len(a.coeffs))
	for i, v := range a.coeffs {
		c[i] = r.coeff.Neg(v)
	}
	return Poly[E]{coeffs: c}
}

// Mul returns the product a*b as the convolution of the coefficient
// sequences, each term reduced in the coefficient field.
func (r *PolyRing[E]) Mul(a, b Poly[E]) Poly[E] {
	if a.IsZero() || b.IsZero() {
		return Poly[E]{}
	}
	c := make([]E, len(a.coeffs)+len(b.coeffs)-1)
	for i := range c {
		c[i] = r.coeff.Zero()
	}
	for i, av := range a.coeffs {
		for j, bv := range b.coeffs {
			c[i+j] = r.coeff.Add(c[i+j], r.coeff.Mul(av, bv))
		}
	}
	return r.normalize(c)
}

// MulScalar returns a scaled by the field element s.
func (r *PolyRing[E]) MulScalar(a Poly[E], s E) Poly[E] {
	c := make([]E, len(a.coeffs))
	for i, v := range a.coeffs {
		c[i] = r.coeff.Mul(v, s)
	}
	return r.normalize(c)
}

// DivMod performs long division of a by b, returning quotient and
// remainder with a = q*b + rem and rem.Degree() < b.Degree() (or rem
// zero). Dividing by the zero polynomial returns ErrDivisionByZero.
//
// Each round divides the remainder's leading term by the divisor's
// leading term, places it at the matching degree of the quotient, and
// subtracts that multiple of the divisor from the remainder.
func (r *PolyRing[E]) DivMod(a, b Poly[E]) (Poly[E], Poly[E], error) {
	if b.IsZero() {
		return Poly[E]{}, Poly[E]{}, ErrDivisionByZero
	}
	if a.IsZero() || a.Degree() < b.Degree() {
		return Poly[E]{}, r.New(a.coeffs...), nil
	}

	// b is normalized, so its leading coefficient is invertible.
	leadInv, err := r.coeff.Inverse(r.Leading(b))
	if err != nil {
		return Poly[E]{}, Poly[E]{}, err
	}

	quot := make([]E, a.Degree()-b.Degree()+1)
	for i := range quot {
		quot[i] = r.coeff.Zero()
	}
	rem := make([]E, len(a.coeffs))
	copy(rem, a.coeffs)

	for len(rem) >= len(b.coeffs) {
		d := len(rem) - len(b.coeffs)
		t := r.coeff.Mul(rem[len(rem)-1], leadInv)
		quot[d] = t
		for i, bv := range b.coeffs {
			rem[d+i] = r.coeff.Sub(rem[d+i], r.coeff.Mul(t, bv))
		}
		n := len(rem)
		for n > 0 && r.coeff.IsZero(rem[n-1]) {
			n--
		}
		rem = rem[:n]
	}
	return r.normalize(quot), r.normalize(rem), nil
}

// Eval evaluates p at x using Horner's rule.
func (r *PolyRing[E]) Eval(p Poly[E], x E) E {
	if p.IsZero() {
		return r.coeff.Zero()
	}
	acc := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc = r.coeff.Add(r.coeff.Mul(acc, x), p.coeffs[i])
	}
	return acc
}

// IsZero reports whether p is the zero polynomial.
func (r *PolyRing[E]) IsZero(p Poly[E]) bool { return p.IsZero() }

// Equal reports whether a and b have identical normalized coefficients.
func (r *PolyRing[E]) Equal(a, b Poly[E]) bool {
	if len(a.coeffs) != len(b.coeffs) {
		return false
	}
	for i := range a.coeffs {
		if !r.coeff.Equal(a.coeffs[i], b.coeffs[i]) {
			return false
		}
	}
	return true
}

// Format renders p in the usual highest-power-first notation, e.g.
// "12x^3+11x^2+2x+9". The zero polynomial renders as "0".
func (r *PolyRing[E]) Format(p Poly[E]) string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if r.coeff.IsZero(p.coeffs[i]) {
			continue
		}
		if !first {
			sb.WriteByte('+')
		}
		first = false
		cs := r.coeff.Format(p.coeffs[i])
		switch {
		case i == 0:
			sb.WriteString(cs)
		case i == 1:
			if cs == "1" {
				sb.WriteString("x")
			} else {
				sb.WriteString(cs + "x")
			}
		default:
			if cs == "1" {
				fmt.Fprintf(&sb, "x^%d", i)
			} else {
				fmt.Fprintf(&sb, "%sx^%d", cs, i)
			}
		}
	}
	return sb.String()
}
