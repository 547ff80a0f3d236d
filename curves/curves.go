// Package curves provides ready-made pairing-friendly toy curves: the
// base and extended fields, the curve over each, subgroup generators
// and a pairing engine, bundled as an Instance.
//
// Two pedagogical curves are built in: TinyJubJub over F_13 and BLS6_6
// over F_43. Both are small enough to follow every intermediate value
// by hand, which is the point of this library.
package curves

import (
	"fmt"

	"github.com/moonpair/tinypairing/ec"
	"github.com/moonpair/tinypairing/ff"
	"github.com/moonpair/tinypairing/pairing"
)

// Element is a point coordinate in the extended field.
type Element = ff.Poly[uint64]

// Spec is the raw description of a pairing curve: everything needed to
// build the fields, the two curve descriptors, the generators and the
// engine. Coefficient slices are ordered lowest power first.
type Spec struct {
	Name    string
	Modulus uint64 // base field characteristic q
	A, B    uint64 // Weierstrass coefficients
	Order   uint64 // #E(F_q)
	R       uint64 // pairing subgroup order
	K       uint64 // embedding degree

	ExtModulus []uint64 // defining polynomial of F_{q^k}
	ExtOrder   uint64   // #E(F_{q^k})

	G1X, G1Y uint64   // G1 generator, base-field coordinates
	G2X, G2Y []uint64 // G2 generator, extension-field coordinates
}

// Instance bundles the constructed objects for one pairing curve.
type Instance struct {
	Name string

	Base *ff.Prime
	Ext  *ff.Extension[uint64]

	// BaseCurve is E(F_q); ExtCurve is the same equation over F_{q^k},
	// where the full r-torsion and the pairing live.
	BaseCurve *ec.Curve[uint64]
	ExtCurve  *ec.Curve[Element]

	G1 ec.Point[uint64]
	G2 ec.Point[Element]

	Engine *pairing.Engine[Element]
}

// Build constructs and cross-validates a curve instance from its spec.
func Build(s Spec) (*Instance, error) {
	base, err := ff.NewPrime(s.Modulus)
	if err != nil {
		return nil, fmt.Errorf("curves: %s: %w", s.Name, err)
	}
	ring := ff.NewPolyRing[uint64](base)
	ext, err := ff.NewExtension[uint64](base, ring.NewFromUint64(s.ExtModulus...))
	if err != nil {
		return nil, fmt.Errorf("curves: %s: %w", s.Name, err)
	}
	if uint64(ext.Degree()) != s.K {
		return nil, fmt.Errorf("curves: %s: extension degree %d does not match embedding degree %d", s.Name, ext.Degree(), s.K)
	}

	a, b := base.FromUint64(s.A), base.FromUint64(s.B)
	baseCurve, err := ec.NewCurve[uint64](base, a, b, ec.Params{
		Order: s.Order, R: s.R, K: s.K, Q: s.Modulus,
	})
	if err != nil {
		return nil, fmt.Errorf("curves: %s: %w", s.Name, err)
	}
	extCurve, err := ec.NewCurve[Element](ext, ext.Embed(a), ext.Embed(b), ec.Params{
		Order: s.ExtOrder, R: s.R, K: s.K, Q: s.Modulus,
	})
	if err != nil {
		return nil, fmt.Errorf("curves: %s: %w", s.Name, err)
	}

	g1, err := baseCurve.NewPoint(base.FromUint64(s.G1X), base.FromUint64(s.G1Y))
	if err != nil {
		return nil, fmt.Errorf("curves: %s: g1: %w", s.Name, err)
	}
	g2, err := extCurve.NewPoint(ring.NewFromUint64(s.G2X...), ring.NewFromUint64(s.G2Y...))
	if err != nil {
		return nil, fmt.Errorf("curves: %s: g2: %w", s.Name, err)
	}
	if !baseCurve.ScalarMul(s.R, g1).IsInfinity() {
		return nil, fmt.Errorf("curves: %s: g1 does not have order %d", s.Name, s.R)
	}
	if !extCurve.ScalarMul(s.R, g2).IsInfinity() {
		return nil, fmt.Errorf("curves: %s: g2 does not have order %d", s.Name, s.R)
	}

	engine, err := pairing.New[Element](extCurve)
	if err != nil {
		return nil, fmt.Errorf("curves: %s: %w", s.Name, err)
	}

	return &Instance{
		Name:      s.Name,
		Base:      base,
		Ext:       ext,
		BaseCurve: baseCurve,
		ExtCurve:  extCurve,
		G1:        g1,
		G2:        g2,
		Engine:    engine,
	}, nil
}

// Lift embeds a base-curve point into the extended curve by embedding
// its coordinates. Infinity lifts to infinity.
func (ins *Instance) Lift(p ec.Point[uint64]) ec.Point[Element] {
	if p.IsInfinity() {
		return ec.Infinity[Element]()
	}
	q, err := ins.ExtCurve.NewPoint(ins.Ext.Embed(p.X()), ins.Ext.Embed(p.Y()))
	if err != nil {
		// A base-curve point satisfies the same equation over the
		// extension.
		panic(fmt.Sprintf("curves: lift of %s: %v", ins.BaseCurve.Format(p), err))
	}
	return q
}

// Pair computes e(Lift(p), q) for a base-curve point p and an extended-
// curve point q.
func (ins *Instance) Pair(p ec.Point[uint64], q ec.Point[Element]) (Element, error) {
	return ins.Engine.Pair(ins.Lift(p), q)
}

// TinyJubJubSpec describes y^2 = x^3 + 8x + 8 over F_13 with r = 5 and
// embedding degree 4; the extension is F_13[x]/(x^4 + 2).
func TinyJubJubSpec() Spec {
	return Spec{
		Name:       "tinyjubjub",
		Modulus:    13,
		A:          8,
		B:          8,
		Order:      20,
		R:          5,
		K:          4,
		ExtModulus: []uint64{2, 0, 0, 0, 1},
		ExtOrder:   28800,
		G1X:        8,
		G1Y:        8,
		G2X:        []uint64{7, 0, 4},     // 4x^2 + 7
		G2Y:        []uint64{0, 10, 0, 5}, // 5x^3 + 10x
	}
}

// TinyJubJub builds the TinyJubJub instance.
func TinyJubJub() (*Instance, error) { return Build(TinyJubJubSpec()) }

// BLS6_6Spec describes y^2 = x^3 + 6 over F_43 with r = 13 and
// embedding degree 6; the extension is F_43[x]/(x^6 + 6).
func BLS6_6Spec() Spec {
	return Spec{
		Name:       "bls6_6",
		Modulus:    43,
		A:          0,
		B:          6,
		Order:      39,
		R:          13,
		K:          6,
		ExtModulus: []uint64{6, 0, 0, 0, 0, 0, 1},
		ExtOrder:   6321251664,
		G1X:        13,
		G1Y:        15,
		G2X:        []uint64{0, 0, 7},     // 7x^2
		G2Y:        []uint64{0, 0, 0, 16}, // 16x^3
	}
}

// BLS6_6 builds the BLS6_6 ("MoonMath") instance.
func BLS6_6() (*Instance, error) { return Build(BLS6_6Spec()) }

// Named returns a built-in curve by name.
func Named(name string) (*Instance, error) {
	switch name {
	case "tinyjubjub":
		return TinyJubJub()
	case "bls6_6":
		return BLS6_6()
	default:
		return nil, fmt.Errorf("curves: unknown curve %q", name)
	}
}
