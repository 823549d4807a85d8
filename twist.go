package bn256

import "math/big"

// twistPoint implements the elliptic curve y² = x³ + 3/ξ over GF(p²), the
// sextic twist whose r-torsion is the pairing group G₂. Points are kept in
// Jacobian form and t = z² when valid; the pairing layer relies on t being
// populated.
type twistPoint struct {
	x, y, z, t *gfP2
}

func newTwistPoint(x, y, z *gfP2) *twistPoint {
	return &twistPoint{x: x.Copy(), y: y.Copy(), z: z.Copy(), t: gfP2Zero()}
}

func twistPointInfinity() *twistPoint {
	return &twistPoint{x: gfP2Zero(), y: gfP2Zero(), z: gfP2Zero(), t: gfP2Zero()}
}

func (c *twistPoint) Copy() *twistPoint {
	return &twistPoint{x: c.x.Copy(), y: c.y.Copy(), z: c.z.Copy(), t: c.t.Copy()}
}

func (c *twistPoint) IsInfinity() bool {
	return c.z.IsZero()
}

// IsOnCurve checks y² - x³ - 3/ξ ≡ 0 over GF(p²) on the raw coordinates;
// meaningful for affine (z = 1) representations.
func (c *twistPoint) IsOnCurve() bool {
	r := c.y.Square().Sub(c.x.Square().Mul(c.x)).Sub(twistB)
	return r.IsZero()
}

// Add mirrors curvePoint.Add over GF(p²) (add-2007-bl).
func (c *twistPoint) Add(d *twistPoint) *twistPoint {
	if c.IsInfinity() {
		return d.Copy()
	}
	if d.IsInfinity() {
		return c.Copy()
	}

	z1z1 := c.z.Square()
	z2z2 := d.z.Square()

	u1 := c.x.Mul(z2z2)
	u2 := d.x.Mul(z1z1)

	s1 := c.y.Mul(d.z.Mul(z2z2))
	s2 := d.y.Mul(c.z.Mul(z1z1))

	h := u2.Sub(u1)
	r := s2.Sub(s1)
	if h.IsZero() && r.IsZero() {
		return c.Double()
	}

	i := h.Double().Square()
	j := h.Mul(i)
	r2 := r.Double()
	v := u1.Mul(i)

	x := r2.Square().Sub(j).Sub(v.Double())
	y := r2.Mul(v.Sub(x)).Sub(s1.Mul(j).Double())
	z := c.z.Add(d.z).Square().Sub(z1z1).Sub(z2z2).Mul(h)

	return &twistPoint{x: x, y: y, z: z, t: gfP2Zero()}
}

// Double mirrors curvePoint.Double over GF(p²) (dbl-2009-l).
func (c *twistPoint) Double() *twistPoint {
	if c.IsInfinity() {
		return twistPointInfinity()
	}

	a := c.x.Square()
	b := c.y.Square()
	cc := b.Square()

	d := c.x.Add(b).Square().Sub(a).Sub(cc).Double()
	e := a.Double().Add(a)
	f := e.Square()

	x := f.Sub(d.Double())
	y := e.Mul(d.Sub(x)).Sub(cc.Double().Double().Double())
	z := c.y.Mul(c.z).Double()

	return &twistPoint{x: x, y: y, z: z, t: gfP2Zero()}
}

// MulScalar is the same double-and-add ladder as curvePoint.MulScalar.
func (c *twistPoint) MulScalar(k *big.Int) *twistPoint {
	if k.Sign() == 0 || c.IsInfinity() {
		return twistPointInfinity()
	}
	if k.BitLen() == 1 {
		return c.Copy()
	}

	r := twistPointInfinity()
	for _, b := range append([]byte{0}, bitsOf(k)...) {
		r = r.Double()
		if b != 0 {
			r = r.Add(c)
		}
	}
	return r
}

func (c *twistPoint) Neg() *twistPoint {
	return &twistPoint{x: c.x.Copy(), y: c.y.Neg(), z: c.z.Copy(), t: c.t.Copy()}
}

// MakeAffine normalizes to z = 1 and sets the t cache; the point at infinity
// becomes the canonical (0, 1, 0) representation.
func (c *twistPoint) MakeAffine() *twistPoint {
	if c.z.IsOne() {
		out := c.Copy()
		out.t = gfP2One()
		return out
	}
	if c.IsInfinity() {
		return &twistPoint{x: gfP2Zero(), y: gfP2One(), z: gfP2Zero(), t: gfP2Zero()}
	}

	zInv := c.z.Inverse()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)

	return &twistPoint{
		x: c.x.Mul(zInv2),
		y: c.y.Mul(zInv3),
		z: gfP2One(),
		t: gfP2One(),
	}
}

// Equal compares the affine projections.
func (c *twistPoint) Equal(d *twistPoint) bool {
	a := c.MakeAffine()
	b := d.MakeAffine()
	return a.x.Equal(b.x) && a.y.Equal(b.y) && a.z.Equal(b.z)
}

func (c *twistPoint) String() string {
	a := c.MakeAffine()
	return "(" + a.x.String() + "," + a.y.String() + ")"
}
