// Package ec implements the group of affine points on a short
// Weierstrass curve y^2 = x^3 + a*x + b over a finite field from the ff
// package. Points are immutable values; the point at infinity is the
// group identity and carries no coordinates.
package ec

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/moonpair/tinypairing/ff"
)

var (
	// ErrNotOnCurve is returned when coordinates do not satisfy the
	// curve equation.
	ErrNotOnCurve = errors.New("ec: point is not on the curve")

	// ErrSingular is returned when a, b describe a singular curve
	// (discriminant zero).
	ErrSingular = errors.New("ec: curve is singular")
)

// Point is an affine point of a curve with coordinate type E, or the
// point at infinity.
type Point[E any] struct {
	x, y E
	inf  bool
}

// Infinity returns the point at infinity.
func Infinity[E any]() Point[E] { return Point[E]{inf: true} }

// IsInfinity reports whether p is the point at infinity.
func (p Point[E]) IsInfinity() bool { return p.inf }

// X returns the x-coordinate. It panics for the point at infinity,
// which has no coordinates.
func (p Point[E]) X() E {
	if p.inf {
		panic("ec: point at infinity has no coordinates")
	}
	return p.x
}

// Y returns the y-coordinate. It panics for the point at infinity.
func (p Point[E]) Y() E {
	if p.inf {
		panic("ec: point at infinity has no coordinates")
	}
	return p.y
}

// Params carries the scalar invariants of a pairing-friendly curve: the
// number of points over the coordinate field, the largest prime factor r
// of the non-extended curve's order, the embedding degree k, and the
// characteristic q of the non-extended curve's base field.
type Params struct {
	Order uint64
	R     uint64
	K     uint64
	Q     uint64
}

// Curve is a short Weierstrass curve descriptor over the field F. It is
// immutable after construction and shared by all its points.
type Curve[E any] struct {
	f      ff.Field[E]
	a, b   E
	params Params
}

// NewCurve validates and constructs a curve descriptor. The curve must
// be non-singular and r must divide the point count.
func NewCurve[E any](f ff.Field[E], a, b E, params Params) (*Curve[E], error) {
	// 4a^3 + 27b^2 != 0
	disc := f.Add(
		f.Mul(f.FromUint64(4), f.Mul(a, f.Square(a))),
		f.Mul(f.FromUint64(27), f.Square(b)),
	)
	if f.IsZero(disc) {
		return nil, ErrSingular
	}
	if params.R < 2 {
		return nil, fmt.Errorf("ec: subgroup order r=%d must be at least 2", params.R)
	}
	if params.Order%params.R != 0 {
		return nil, fmt.Errorf("ec: subgroup order %d does not divide curve order %d", params.R, params.Order)
	}
	if params.K < 1 {
		return nil, fmt.Errorf("ec: embedding degree %d must be at least 1", params.K)
	}
	if params.Q < 2 {
		return nil, fmt.Errorf("ec: field characteristic %d must be at least 2", params.Q)
	}
	return &Curve[E]{f: f, a: a, b: b, params: params}, nil
}

// Field returns the coordinate field.
func (c *Curve[E]) Field() ff.Field[E] { return c.f }

// A returns the curve coefficient a.
func (c *Curve[E]) A() E { return c.a }

// B returns the curve coefficient b.
func (c *Curve[E]) B() E { return c.b }

// Params returns the scalar curve parameters.
func (c *Curve[E]) Params() Params { return c.params }

// NewPoint constructs the affine point (x, y), verifying it satisfies
// the curve equation.
func (c *Curve[E]) NewPoint(x, y E) (Point[E], error) {
	p := Point[E]{x: x, y: y}
	if !c.IsOnCurve(p) {
		return Point[E]{}, fmt.Errorf("%w: (%s, %s)", ErrNotOnCurve, c.f.Format(x), c.f.Format(y))
	}
	return p, nil
}

// Infinity returns the identity of the group.
func (c *Curve[E]) Infinity() Point[E] { return Infinity[E]() }

// IsOnCurve reports whether p satisfies y^2 = x^3 + a*x + b. The point
// at infinity is on every curve.
func (c *Curve[E]) IsOnCurve(p Point[E]) bool {
	if p.inf {
		return true
	}
	lhs := c.f.Square(p.y)
	rhs := c.f.Add(
		c.f.Add(c.f.Mul(p.x, c.f.Square(p.x)), c.f.Mul(c.a, p.x)),
		c.b,
	)
	return c.f.Equal(lhs, rhs)
}

// Equal reports point equality: infinity equals only infinity, finite
// points compare by coordinates.
func (c *Curve[E]) Equal(p, q Point[E]) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return c.f.Equal(p.x, q.x) && c.f.Equal(p.y, q.y)
}

// Neg returns -p, the reflection (x, -y). Infinity is its own negative.
func (c *Curve[E]) Neg(p Point[E]) Point[E] {
	if p.inf {
		return p
	}
	return Point[E]{x: p.x, y: c.f.Neg(p.y)}
}

// Add returns p + q under the chord-and-tangent group law.
func (c *Curve[E]) Add(p, q Point[E]) Point[E] {
	if c.Equal(p, q) {
		return c.Double(p)
	}
	if c.Equal(p, c.Neg(q)) {
		return Infinity[E]()
	}
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}
	// p != q and p != -q, so the x-coordinates differ and the chord
	// slope is well-defined.
	m := c.slope(c.f.Sub(q.y, p.y), c.f.Sub(q.x, p.x))
	return c.chord(m, p.x, q.x, p.y)
}

// Double returns 2p. Doubling infinity gives infinity; a finite point
// with y = 0 has a vertical tangent and doubles to infinity.
func (c *Curve[E]) Double(p Point[E]) Point[E] {
	if p.inf {
		return p
	}
	if c.f.IsZero(p.y) {
		return Infinity[E]()
	}
	// m = (3x^2 + a) / 2y
	num := c.f.Add(c.f.Mul(c.f.FromUint64(3), c.f.Square(p.x)), c.a)
	m := c.slope(num, c.f.Add(p.y, p.y))
	return c.chord(m, p.x, p.x, p.y)
}

// slope divides num by den, which is non-zero on every reachable path.
func (c *Curve[E]) slope(num, den E) E {
	inv, err := c.f.Inverse(den)
	if err != nil {
		panic(fmt.Sprintf("ec: slope denominator is zero: %v", err))
	}
	return c.f.Mul(num, inv)
}

// chord completes the group law from a slope m through (x1, y1) and x2:
// x3 = m^2 - x1 - x2, y3 = m*(x1 - x3) - y1.
func (c *Curve[E]) chord(m, x1, x2, y1 E) Point[E] {
	x3 := c.f.Sub(c.f.Sub(c.f.Square(m), x1), x2)
	y3 := c.f.Sub(c.f.Mul(m, c.f.Sub(x1, x3)), y1)
	return Point[E]{x: x3, y: y3}
}

// ScalarMul returns k*p by double-and-add over the bits of k, most
// significant first. The leading bit seeds the accumulator with p
// itself, so infinity is never doubled on the way. k = 0 gives the
// identity.
func (c *Curve[E]) ScalarMul(k uint64, p Point[E]) Point[E] {
	if k == 0 || p.inf {
		return Infinity[E]()
	}
	acc := p
	for i := bits.Len64(k) - 2; i >= 0; i-- {
		acc = c.Double(acc)
		if k>>uint(i)&1 == 1 {
			acc = c.Add(acc, p)
		}
	}
	return acc
}

// Format renders a point for logs: "(x, y)" or "inf".
func (c *Curve[E]) Format(p Point[E]) string {
	if p.inf {
		return "inf"
	}
	return fmt.Sprintf("(%s, %s)", c.f.Format(p.x), c.f.Format(p.y))
}
