package bn256

// gfP6 implements the field of size p⁶ as a cubic extension of gfP2 where
// τ³ = ξ and ξ = i+9. The value is x·τ² + y·τ + z.
type gfP6 struct {
	x, y, z *gfP2
}

func gfP6Zero() *gfP6 {
	return &gfP6{x: gfP2Zero(), y: gfP2Zero(), z: gfP2Zero()}
}

func gfP6One() *gfP6 {
	return &gfP6{x: gfP2Zero(), y: gfP2Zero(), z: gfP2One()}
}

func (e *gfP6) Copy() *gfP6 {
	return &gfP6{x: e.x.Copy(), y: e.y.Copy(), z: e.z.Copy()}
}

func (e *gfP6) IsZero() bool {
	return e.x.IsZero() && e.y.IsZero() && e.z.IsZero()
}

func (e *gfP6) IsOne() bool {
	return e.x.IsZero() && e.y.IsZero() && e.z.IsOne()
}

func (e *gfP6) Neg() *gfP6 {
	return &gfP6{x: e.x.Neg(), y: e.y.Neg(), z: e.z.Neg()}
}

func (e *gfP6) Add(g *gfP6) *gfP6 {
	return &gfP6{x: e.x.Add(g.x), y: e.y.Add(g.y), z: e.z.Add(g.z)}
}

func (e *gfP6) Sub(g *gfP6) *gfP6 {
	return &gfP6{x: e.x.Sub(g.x), y: e.y.Sub(g.y), z: e.z.Sub(g.z)}
}

func (e *gfP6) Double() *gfP6 {
	return &gfP6{x: e.x.Double(), y: e.y.Double(), z: e.z.Double()}
}

// Mul is Algorithm 13 from http://eprint.iacr.org/2010/354.pdf, with
// short-circuits for the sparse operands the line functions produce.
func (e *gfP6) Mul(g *gfP6) *gfP6 {
	if e.x.IsZero() {
		if e.y.IsZero() {
			return g.MulScalar(e.z)
		}

		t0 := g.z.Mul(e.z)
		t1 := g.y.Mul(e.y)

		tz := g.x.Add(g.y).Mul(e.y)
		tz = tz.Sub(t1)
		tz = tz.MulXi()
		tz = tz.Add(t0)

		ty := g.y.Add(g.z).Mul(e.y.Add(e.z))
		ty = ty.Sub(t0)
		ty = ty.Sub(t1)

		tx := g.x.Mul(e.z)
		tx = tx.Add(t1)

		return &gfP6{x: tx, y: ty, z: tz}
	}

	if g.x.IsZero() {
		if g.y.IsZero() {
			return e.MulScalar(g.z)
		}

		t0 := e.z.Mul(g.z)
		t1 := e.y.Mul(g.y)

		tz := e.x.Add(e.y).Mul(g.y)
		tz = tz.Sub(t1)
		tz = tz.MulXi()
		tz = tz.Add(t0)

		ty := e.y.Add(e.z).Mul(g.y.Add(g.z))
		ty = ty.Sub(t0)
		ty = ty.Sub(t1)

		tx := e.x.Mul(g.z)
		tx = tx.Add(t1)

		return &gfP6{x: tx, y: ty, z: tz}
	}

	t0 := e.z.Mul(g.z)
	t1 := e.y.Mul(g.y)
	t2 := e.x.Mul(g.x)

	tz := e.x.Add(e.y).Mul(g.x.Add(g.y))
	tz = tz.Sub(t1)
	tz = tz.Sub(t2)
	tz = tz.MulXi()
	tz = tz.Add(t0)

	ty := e.y.Add(e.z).Mul(g.y.Add(g.z))
	ty = ty.Sub(t0)
	ty = ty.Sub(t1)
	ty = ty.Add(t2.MulXi())

	tx := e.x.Add(e.z).Mul(g.x.Add(g.z))
	tx = tx.Sub(t0)
	tx = tx.Add(t1)
	tx = tx.Sub(t2)

	return &gfP6{x: tx, y: ty, z: tz}
}

func (e *gfP6) MulScalar(k *gfP2) *gfP6 {
	return &gfP6{x: e.x.Mul(k), y: e.y.Mul(k), z: e.z.Mul(k)}
}

// MulTau multiplies by τ, rotating the components:
// (x, y, z) → (y, z, x·ξ).
func (e *gfP6) MulTau() *gfP6 {
	return &gfP6{x: e.y.Copy(), y: e.z.Copy(), z: e.x.MulXi()}
}

// Square is Algorithm 16 from http://eprint.iacr.org/2010/354.pdf.
func (e *gfP6) Square() *gfP6 {
	ay2 := e.y.Double()
	c4 := e.z.Mul(ay2)
	c5 := e.x.Square()
	c1 := c5.MulXi().Add(c4)
	c2 := c4.Sub(c5)
	c3 := e.z.Square()
	c4 = e.x.Add(e.z).Sub(e.y)
	c5 = ay2.Mul(e.x)
	c4 = c4.Square()
	c0 := c5.MulXi().Add(c3)
	c2 = c2.Add(c4).Add(c5).Sub(c3)
	return &gfP6{x: c2, y: c1, z: c0}
}

// Inverse is Algorithm 17 from http://eprint.iacr.org/2010/354.pdf. The C
// line differs from the paper, which has an error there.
func (e *gfP6) Inverse() *gfP6 {
	xx := e.x.Square()
	yy := e.y.Square()
	zz := e.z.Square()

	xy := e.x.Mul(e.y)
	xz := e.x.Mul(e.z)
	yz := e.y.Mul(e.z)

	a := zz.Sub(xy.MulXi())
	b := xx.MulXi().Sub(yz)
	c := yy.Sub(xz)

	f := c.Mul(e.y).MulXi()
	f = f.Add(a.Mul(e.z))
	f = f.Add(b.Mul(e.x).MulXi())
	f = f.Inverse()

	return &gfP6{x: c.Mul(f), y: b.Mul(f), z: a.Mul(f)}
}

func (e *gfP6) Equal(g *gfP6) bool {
	return e.x.Equal(g.x) && e.y.Equal(g.y) && e.z.Equal(g.z)
}

func (e *gfP6) String() string {
	return "(" + e.x.String() + "," + e.y.String() + "," + e.z.String() + ")"
}
