package ec

// Frobenius applies the Frobenius endomorphism to p, raising each
// coordinate to the q-th power where q is the characteristic of the
// non-extended base field. Points with base-field coordinates are fixed.
func (c *Curve[E]) Frobenius(p Point[E]) Point[E] {
	if p.inf {
		return p
	}
	return Point[E]{
		x: c.f.Exp(p.x, c.params.Q),
		y: c.f.Exp(p.y, c.params.Q),
	}
}

// Trace sums the Frobenius images of p over i = 0..k-1, where k is the
// embedding degree. For a point in the base-field subgroup every image
// is p itself, so the trace is k*p; for a point in the trace-zero
// ("G2-like") subgroup the images cancel to infinity. This classifies
// r-torsion points into the two pairing subgroups.
func (c *Curve[E]) Trace(p Point[E]) Point[E] {
	acc := Infinity[E]()
	img := p
	for i := uint64(0); i < c.params.K; i++ {
		acc = c.Add(acc, img)
		img = c.Frobenius(img)
	}
	return acc
}
