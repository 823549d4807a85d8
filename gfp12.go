package bn256

import "math/big"

// gfP12 implements the field of size p¹² as a quadratic extension of gfP6
// where ω² = τ. The value is x·ω + y.
type gfP12 struct {
	x, y *gfP6
}

func gfP12One() *gfP12 {
	return &gfP12{x: gfP6Zero(), y: gfP6One()}
}

func (e *gfP12) Copy() *gfP12 {
	return &gfP12{x: e.x.Copy(), y: e.y.Copy()}
}

func (e *gfP12) IsZero() bool {
	return e.x.IsZero() && e.y.IsZero()
}

func (e *gfP12) IsOne() bool {
	return e.x.IsZero() && e.y.IsOne()
}

// Conjugate negates the ω component; it inverts any element of norm one.
func (e *gfP12) Conjugate() *gfP12 {
	return &gfP12{x: e.x.Neg(), y: e.y.Copy()}
}

func (e *gfP12) Neg() *gfP12 {
	return &gfP12{x: e.x.Neg(), y: e.y.Neg()}
}

// Frobenius computes e^p using the precomputed ξ^(k(p-1)/6) table.
func (e *gfP12) Frobenius() *gfP12 {
	x := &gfP6{
		x: e.x.x.Conjugate().Mul(xi1[4]),
		y: e.x.y.Conjugate().Mul(xi1[2]),
		z: e.x.z.Conjugate().Mul(xi1[0]),
	}
	y := &gfP6{
		x: e.y.x.Conjugate().Mul(xi1[3]),
		y: e.y.y.Conjugate().Mul(xi1[1]),
		z: e.y.z.Conjugate(),
	}
	return &gfP12{x: x, y: y}
}

// FrobeniusP2 computes e^(p²); the conjugations cancel and only the norm
// factors ξ^(k(p²-1)/6) remain, which live in GF(p).
func (e *gfP12) FrobeniusP2() *gfP12 {
	x := &gfP6{
		x: e.x.x.Mul(xi2[4]),
		y: e.x.y.Mul(xi2[2]),
		z: e.x.z.Mul(xi2[0]),
	}
	y := &gfP6{
		x: e.y.x.Mul(xi2[3]),
		y: e.y.y.Mul(xi2[1]),
		z: e.y.z.Copy(),
	}
	return &gfP12{x: x, y: y}
}

func (e *gfP12) Add(g *gfP12) *gfP12 {
	return &gfP12{x: e.x.Add(g.x), y: e.y.Add(g.y)}
}

func (e *gfP12) Sub(g *gfP12) *gfP12 {
	return &gfP12{x: e.x.Sub(g.x), y: e.y.Sub(g.y)}
}

func (e *gfP12) Mul(g *gfP12) *gfP12 {
	axbx := e.x.Mul(g.x)
	axby := e.x.Mul(g.y)
	aybx := e.y.Mul(g.x)
	ayby := e.y.Mul(g.y)
	return &gfP12{
		x: axby.Add(aybx),
		y: ayby.Add(axbx.MulTau()),
	}
}

func (e *gfP12) MulScalar(k *gfP6) *gfP12 {
	return &gfP12{x: e.x.Mul(k), y: e.y.Mul(k)}
}

func (e *gfP12) Square() *gfP12 {
	v0 := e.x.Mul(e.y)

	t := e.x.MulTau().Add(e.y)
	ty := e.x.Add(e.y).Mul(t).Sub(v0)
	ty = ty.Sub(v0.MulTau())

	return &gfP12{x: v0.Double(), y: ty}
}

func (e *gfP12) Inverse() *gfP12 {
	t1 := e.x.Square().MulTau()
	t2 := e.y.Square().Sub(t1).Inverse()
	return &gfP12{x: e.x.Neg().Mul(t2), y: e.y.Mul(t2)}
}

// Exp computes e^k with a two-register ladder over the bits of k, most
// significant first.
func (e *gfP12) Exp(k *big.Int) *gfP12 {
	r := [2]*gfP12{gfP12One(), e.Copy()}
	for _, kb := range bitsOf(k) {
		r[kb^1] = r[kb].Mul(r[kb^1])
		r[kb] = r[kb].Square()
	}
	return r[0]
}

func (e *gfP12) Equal(g *gfP12) bool {
	return e.x.Equal(g.x) && e.y.Equal(g.y)
}

func (e *gfP12) String() string {
	return "(" + e.x.String() + "," + e.y.String() + ")"
}
