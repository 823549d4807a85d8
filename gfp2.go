package bn256

import "math/big"

// For details of the algorithms used, see "Multiplication and Squaring on
// Pairing-Friendly Fields", Devegili et al. http://eprint.iacr.org/2006/471.pdf

// gfP2 implements a field of size p² as a quadratic extension of the base
// field where i² = -1. The value is x·i + y.
type gfP2 struct {
	x, y *gfP
}

func newGFp2(x, y *big.Int) *gfP2 {
	return &gfP2{x: newGFp(x), y: newGFp(y)}
}

func gfP2Zero() *gfP2 {
	return &gfP2{x: gfPZero(), y: gfPZero()}
}

func gfP2One() *gfP2 {
	return &gfP2{x: gfPZero(), y: gfPOne()}
}

func (e *gfP2) Copy() *gfP2 {
	return &gfP2{x: e.x.Copy(), y: e.y.Copy()}
}

func (e *gfP2) IsZero() bool {
	return e.x.IsZero() && e.y.IsZero()
}

func (e *gfP2) IsOne() bool {
	return e.x.IsZero() && e.y.IsOne()
}

// Conjugate computes e^p: for γ = x·i + y in GF(p²), γ^p = -x·i + y.
func (e *gfP2) Conjugate() *gfP2 {
	return &gfP2{x: e.x.Neg(), y: e.y.Copy()}
}

func (e *gfP2) Neg() *gfP2 {
	return &gfP2{x: e.x.Neg(), y: e.y.Neg()}
}

func (e *gfP2) Add(g *gfP2) *gfP2 {
	return &gfP2{x: e.x.Add(g.x), y: e.y.Add(g.y)}
}

func (e *gfP2) Sub(g *gfP2) *gfP2 {
	return &gfP2{x: e.x.Sub(g.x), y: e.y.Sub(g.y)}
}

func (e *gfP2) Double() *gfP2 {
	return &gfP2{x: e.x.Double(), y: e.y.Double()}
}

// Mul uses the Karatsuba identity: with vy = y₁y₂ and vx = x₁x₂ the result
// is ((x₁+y₁)(x₂+y₂) - vy - vx)·i + (vy - vx).
func (e *gfP2) Mul(g *gfP2) *gfP2 {
	vy := e.y.Mul(g.y)
	vx := e.x.Mul(g.x)
	c1 := e.x.Add(e.y).Mul(g.x.Add(g.y)).Sub(vy).Sub(vx)
	c0 := vy.Sub(vx)
	return &gfP2{x: c1, y: c0}
}

func (e *gfP2) MulScalar(k *gfP) *gfP2 {
	return &gfP2{x: e.x.Mul(k), y: e.y.Mul(k)}
}

// MulXi multiplies by ξ = i+9, the non-residue the tower is built on:
// (x·i + y)(i + 9) = (9x + y)·i + (9y - x).
func (e *gfP2) MulXi() *gfP2 {
	tx := e.x.Triple().Triple().Add(e.y)
	ty := e.y.Triple().Triple().Sub(e.x)
	return &gfP2{x: tx, y: ty}
}

// Square uses the complex squaring identity (y-x)(y+x), 2xy.
func (e *gfP2) Square() *gfP2 {
	t1 := e.y.Sub(e.x)
	t2 := e.y.Add(e.x)
	ty := t1.Mul(t2)
	tx := e.x.Mul(e.y).Double()
	return &gfP2{x: tx, y: ty}
}

// Inverse follows Algorithm 8 from http://eprint.iacr.org/2010/354.pdf:
// with t = x² + y², 1/(x·i + y) = (-x·i + y)/t.
func (e *gfP2) Inverse() *gfP2 {
	t := e.x.Square().Add(e.y.Square()).Inverse()
	return &gfP2{x: e.x.Neg().Mul(t), y: e.y.Mul(t)}
}

// Exp computes e^k with a two-register ladder over the bits of k, most
// significant first.
func (e *gfP2) Exp(k *big.Int) *gfP2 {
	r := [2]*gfP2{gfP2One(), e.Copy()}
	for _, kb := range bitsOf(k) {
		r[kb^1] = r[kb].Mul(r[kb^1])
		r[kb] = r[kb].Square()
	}
	return r[0]
}

func (e *gfP2) Equal(g *gfP2) bool {
	return e.x.Equal(g.x) && e.y.Equal(g.y)
}

func (e *gfP2) String() string {
	return "(" + e.x.String() + "," + e.y.String() + ")"
}
