package bn256

import "math/big"

// curvePoint implements the elliptic curve y² = x³ + 3 over GF(p). Points
// are kept in Jacobian form: the affine point is (x/z², y/z³) and z = 0
// marks the point at infinity.
type curvePoint struct {
	x, y, z *gfP
}

func newCurvePoint(x, y, z *big.Int) *curvePoint {
	return &curvePoint{x: newGFp(x), y: newGFp(y), z: newGFp(z)}
}

// curvePointInfinity returns the zero of the group.
func curvePointInfinity() *curvePoint {
	return &curvePoint{x: gfPZero(), y: gfPZero(), z: gfPZero()}
}

func (c *curvePoint) Copy() *curvePoint {
	return &curvePoint{x: c.x.Copy(), y: c.y.Copy(), z: c.z.Copy()}
}

func (c *curvePoint) IsInfinity() bool {
	return c.z.IsZero()
}

// IsOnCurve checks y² - x³ - 3 ≡ 0 mod p on the raw coordinates; it is
// meaningful for affine (z = 1) representations.
func (c *curvePoint) IsOnCurve() bool {
	r := c.y.Square().Sub(c.x.Square().Mul(c.x)).Sub(curveB)
	return r.IsZero()
}

// Add uses the add-2007-bl formulas from
// http://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-add-2007-bl
func (c *curvePoint) Add(d *curvePoint) *curvePoint {
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

	return &curvePoint{x: x, y: y, z: z}
}

// Double uses the dbl-2009-l formulas from
// http://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-dbl-2009-l
func (c *curvePoint) Double() *curvePoint {
	if c.IsInfinity() {
		return curvePointInfinity()
	}

	a := c.x.Square()
	b := c.y.Square()
	cc := b.Square()

	d := c.x.Add(b).Square().Sub(a).Sub(cc).Double()
	e := a.Triple()
	f := e.Square()

	x := f.Sub(d.Double())
	y := e.Mul(d.Sub(x)).Sub(cc.Double().Double().Double())
	z := c.y.Mul(c.z).Double()

	return &curvePoint{x: x, y: y, z: z}
}

// MulScalar is a double-and-add ladder over the bits of k, most significant
// first, with a zero bit prepended so the first iteration doubles the empty
// accumulator.
func (c *curvePoint) MulScalar(k *big.Int) *curvePoint {
	if k.Sign() == 0 || c.IsInfinity() {
		return curvePointInfinity()
	}
	if k.BitLen() == 1 {
		return c.Copy()
	}

	r := curvePointInfinity()
	for _, b := range append([]byte{0}, bitsOf(k)...) {
		r = r.Double()
		if b != 0 {
			r = r.Add(c)
		}
	}
	return r
}

func (c *curvePoint) Neg() *curvePoint {
	return &curvePoint{x: c.x.Copy(), y: c.y.Neg(), z: c.z.Copy()}
}

// MakeAffine normalizes to z = 1; the point at infinity becomes the
// canonical (0, 1, 0) representation.
func (c *curvePoint) MakeAffine() *curvePoint {
	if c.z.IsOne() {
		return c.Copy()
	}
	if c.IsInfinity() {
		return &curvePoint{x: gfPZero(), y: gfPOne(), z: gfPZero()}
	}

	zInv := c.z.Inverse()
	zInv2 := zInv.Square()

	return &curvePoint{
		x: c.x.Mul(zInv2),
		y: c.y.Mul(zInv).Mul(zInv2),
		z: gfPOne(),
	}
}

// Equal compares the affine projections, so distinct Jacobian
// representations of the same point are equal.
func (c *curvePoint) Equal(d *curvePoint) bool {
	a := c.MakeAffine()
	b := d.MakeAffine()
	return a.x.Equal(b.x) && a.y.Equal(b.y) && a.z.Equal(b.z)
}

func (c *curvePoint) String() string {
	a := c.MakeAffine()
	return "(" + a.x.String() + "," + a.y.String() + ")"
}
