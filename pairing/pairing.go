// Package pairing computes the Tate pairing e(P, Q) on a pairing-
// friendly curve over an extended field, via Miller's loop and a final
// exponentiation.
//
// The engine operates entirely on the curve over the extension: base-
// field points must be lifted (coordinates embedded) before pairing.
// P is expected to come from an order-r subgroup and Q from a linearly
// independent subgroup of the same order; only the order of P is
// enforced, through the Miller-loop postcondition.
package pairing

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/rs/zerolog"

	"github.com/moonpair/tinypairing/ec"
	"github.com/moonpair/tinypairing/logger"
)

var (
	// ErrOrderViolation is returned when the Miller loop does not end
	// at infinity, i.e. the first argument does not have order r.
	// This is an input or logic error, not a transient condition.
	ErrOrderViolation = errors.New("pairing: point is not in an order-r subgroup")
)

// Engine computes pairings on a fixed curve descriptor.
type Engine[E any] struct {
	curve    *ec.Curve[E]
	r        uint64
	finalExp uint64 // (q^k - 1) / r
	log      zerolog.Logger
}

// New builds a pairing engine from a curve over the extended field. It
// derives the final-exponentiation power (q^k - 1) / r, rejecting
// parameters where q^k overflows or r does not divide q^k - 1 (the
// latter would contradict k being the embedding degree).
func New[E any](curve *ec.Curve[E]) (*Engine[E], error) {
	p := curve.Params()
	qk := uint64(1)
	for i := uint64(0); i < p.K; i++ {
		if qk > math.MaxUint64/p.Q {
			return nil, fmt.Errorf("pairing: q^k overflows for q=%d k=%d", p.Q, p.K)
		}
		qk *= p.Q
	}
	if (qk-1)%p.R != 0 {
		return nil, fmt.Errorf("pairing: r=%d does not divide q^k-1=%d, k is not the embedding degree", p.R, qk-1)
	}
	return &Engine[E]{
		curve:    curve,
		r:        p.R,
		finalExp: (qk - 1) / p.R,
		log:      logger.Logger().With().Str("component", "pairing").Logger(),
	}, nil
}

// Curve returns the engine's curve descriptor.
func (e *Engine[E]) Curve() *ec.Curve[E] { return e.curve }

// InSubgroup reports whether p is annihilated by r, i.e. belongs to the
// r-torsion. Callers pairing points of uncertain provenance can use it
// to validate the Q argument, which Pair itself does not check.
func (e *Engine[E]) InSubgroup(p ec.Point[E]) bool {
	return e.curve.ScalarMul(e.r, p).IsInfinity()
}

// line evaluates at t the line through a and b: with slope m it is
// m*(xt - xa) - (yt - ya), zero exactly when t is collinear with a and
// b. Vertical lines (a = -b, or a tangent with y = 0) evaluate to
// xt - xa, and a line through infinity degenerates to the constant 1.
func (e *Engine[E]) line(a, b, t ec.Point[E]) E {
	f := e.curve.Field()
	if a.IsInfinity() && b.IsInfinity() {
		return f.One()
	}
	if a.IsInfinity() {
		return f.Sub(t.X(), b.X())
	}
	if b.IsInfinity() {
		return f.Sub(t.X(), a.X())
	}

	var m E
	if e.curve.Equal(a, b) {
		if f.IsZero(a.Y()) {
			return f.Sub(t.X(), a.X())
		}
		// tangent: m = (3x^2 + a) / 2y
		num := f.Add(f.Mul(f.FromUint64(3), f.Square(a.X())), e.curve.A())
		m = e.div(num, f.Add(a.Y(), a.Y()))
	} else {
		if f.Equal(a.X(), b.X()) {
			// vertical secant through a and -a
			return f.Sub(t.X(), a.X())
		}
		m = e.div(f.Sub(b.Y(), a.Y()), f.Sub(b.X(), a.X()))
	}
	return f.Sub(f.Mul(m, f.Sub(t.X(), a.X())), f.Sub(t.Y(), a.Y()))
}

func (e *Engine[E]) div(num, den E) E {
	f := e.curve.Field()
	inv, err := f.Inverse(den)
	if err != nil {
		panic(fmt.Sprintf("pairing: line slope denominator is zero: %v", err))
	}
	return f.Mul(num, inv)
}

// MillerLoop accumulates line evaluations at q while implicitly
// computing r*p by double-and-add over the bits of r, skipping the
// leading bit. Each iteration squares the accumulator and multiplies in
// the tangent line at the running point before doubling it; on a set
// bit it additionally multiplies in the secant line through the running
// point and p before adding p.
//
// The running point must land on infinity (p has order r); otherwise
// ErrOrderViolation is returned. The output is an element of the
// extended field whose order divides q^k - 1.
func (e *Engine[E]) MillerLoop(p, q ec.Point[E]) (E, error) {
	fld := e.curve.Field()
	if p.IsInfinity() || q.IsInfinity() {
		return fld.One(), nil
	}

	f := fld.One()
	acc := p
	for i := bits.Len64(e.r) - 2; i >= 0; i-- {
		v := e.line(acc, acc, q)
		f = fld.Mul(fld.Square(f), v)
		acc = e.curve.Double(acc)
		e.logStep(i, "double", v, f, acc)

		if e.r>>uint(i)&1 == 1 {
			v = e.line(acc, p, q)
			f = fld.Mul(f, v)
			acc = e.curve.Add(acc, p)
			e.logStep(i, "add", v, f, acc)
		}
	}
	if !acc.IsInfinity() {
		return fld.Zero(), fmt.Errorf("%w: r*P = %s", ErrOrderViolation, e.curve.Format(acc))
	}
	return f, nil
}

// FinalExp raises a Miller-loop output to (q^k - 1) / r, projecting it
// onto the order-r subgroup of the multiplicative group. The result is
// the canonical pairing value.
func (e *Engine[E]) FinalExp(f E) E {
	return e.curve.Field().Exp(f, e.finalExp)
}

// Pair computes the Tate pairing e(p, q). The result is bilinear and,
// for non-identity points from independent order-r subgroups,
// non-degenerate. Linear independence of p and q is a caller contract;
// see InSubgroup.
func (e *Engine[E]) Pair(p, q ec.Point[E]) (E, error) {
	f, err := e.MillerLoop(p, q)
	if err != nil {
		var zero E
		return zero, err
	}
	out := e.FinalExp(f)
	e.log.Debug().
		Str("miller", e.curve.Field().Format(f)).
		Str("pairing", e.curve.Field().Format(out)).
		Msg("pairing computed")
	return out, nil
}

func (e *Engine[E]) logStep(bit int, op string, v, f E, acc ec.Point[E]) {
	fld := e.curve.Field()
	e.log.Debug().
		Int("bit", bit).
		Str("op", op).
		Str("line", fld.Format(v)).
		Str("f", fld.Format(f)).
		Str("point", e.curve.Format(acc)).
		Msg("miller step")
}
