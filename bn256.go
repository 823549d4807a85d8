// Package bn256 implements the optimal ate pairing over a 256-bit
// Barreto-Naehrig curve.
//
// The package exposes the three pairing groups: G₁ on the curve y² = x³ + 3
// over GF(p), G₂ on the sextic twist y² = x³ + 3/ξ over GF(p²), and GT
// inside GF(p¹²), together with the pairing e : G₁ × G₂ → GT satisfying
// e(aP, bQ) = e(P, Q)^(ab). The GF(p¹²) tower is built on i² = -1 and the
// non-residue ξ = i+9 with τ³ = ξ and ω² = τ.
//
// Security note: the scalar ladders and the Miller loop branch on secret
// bits, so execution time leaks scalar Hamming weights. Deployments facing
// adversaries with side-channel access need constant-time ladders instead.
package bn256

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var (
	// ErrInvalidEncoding indicates a payload whose length does not match
	// the group's fixed serialization size.
	ErrInvalidEncoding = errors.New("bn256: invalid encoding")
	// ErrInvalidPoint indicates a point that is not on its curve.
	ErrInvalidPoint = errors.New("bn256: point not on curve")
	// ErrRandomSource indicates a failure of the entropy source.
	ErrRandomSource = errors.New("bn256: random source failure")
)

// numBytes is the serialized size of one base-field element.
const numBytes = 32

// randomK samples a uniform scalar in [2, Order) by rejection: one byte more
// than the order is drawn so the modular bias can be detected and rejected.
// The +2 floor keeps 0 and 1 out of the range.
func randomK(r io.Reader) (*big.Int, error) {
	if r == nil {
		r = rand.Reader
	}

	byteLen := (Order.BitLen()+7)/8 + 1
	base := big.NewInt(2)
	kRange := new(big.Int).Sub(Order, base)
	barrier := new(big.Int).Lsh(big.NewInt(1), uint(8*byteLen))
	barrier.Sub(barrier, kRange)

	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Join(ErrRandomSource, err)
		}
		n := new(big.Int).SetBytes(buf)
		k := new(big.Int).Mod(n, kRange)
		if new(big.Int).Sub(n, k).Cmp(barrier) <= 0 {
			return k.Add(k, base), nil
		}
	}
}

// G1 is a point of the order-r group on the curve over GF(p). Values are
// produced by the package's constructors and operations; the zero value is
// not usable.
type G1 struct {
	p *curvePoint
}

// G1Generator returns the generator of G₁, the point (1, 2).
func G1Generator() *G1 {
	return &G1{p: curveGen.Copy()}
}

// RandomG1 returns k and k·g where k is a random scalar in [2, Order) read
// from r (crypto/rand.Reader when r is nil).
func RandomG1(r io.Reader) (*big.Int, *G1, error) {
	k, err := randomK(r)
	if err != nil {
		return nil, nil, err
	}
	return k, ScalarBaseMultG1(k), nil
}

// ScalarBaseMultG1 returns k times the G₁ generator.
func ScalarBaseMultG1(k *big.Int) *G1 {
	return &G1{p: curveGen.MulScalar(k)}
}

// Copy returns an independent copy of the point.
func (g *G1) Copy() *G1 {
	return &G1{p: g.p.Copy()}
}

// Add returns g + h.
func (g *G1) Add(h *G1) *G1 {
	return &G1{p: g.p.Add(h.p)}
}

// Neg returns -g.
func (g *G1) Neg() *G1 {
	return &G1{p: g.p.Neg()}
}

// ScalarMult returns k·g.
func (g *G1) ScalarMult(k *big.Int) *G1 {
	return &G1{p: g.p.MulScalar(k)}
}

// IsInfinity reports whether g is the group identity.
func (g *G1) IsInfinity() bool {
	return g.p.IsInfinity()
}

// IsOnCurve reports whether the affine projection of g satisfies the curve
// equation. Unmarshal does not validate; callers accepting adversarial
// input check here.
func (g *G1) IsOnCurve() bool {
	if g.p.IsInfinity() {
		return true
	}
	return g.p.MakeAffine().IsOnCurve()
}

// Equal reports whether two points denote the same affine point.
func (g *G1) Equal(h *G1) bool {
	return g.p.Equal(h.p)
}

func (g *G1) String() string {
	return "bn256.G1" + g.p.String()
}

// Marshal converts g to its canonical 64-byte form, x ‖ y affine,
// big-endian. The identity serializes as (0, 1).
func (g *G1) Marshal() []byte {
	a := g.p.MakeAffine()
	buf := make([]byte, 2*numBytes)
	copy(buf[0*numBytes:], a.x.Bytes())
	copy(buf[1*numBytes:], a.y.Bytes())
	return buf
}

// UnmarshalG1 reads a point from its 64-byte form. The length is validated;
// curve and subgroup membership are not.
func UnmarshalG1(data []byte) (*G1, error) {
	if len(data) != 2*numBytes {
		return nil, ErrInvalidEncoding
	}

	x := new(big.Int).SetBytes(data[0*numBytes : 1*numBytes])
	y := new(big.Int).SetBytes(data[1*numBytes : 2*numBytes])

	if x.Sign() == 0 && y.BitLen() <= 1 {
		// Both the canonical (0, 1) encoding and all zeroes denote the
		// identity.
		return &G1{p: curvePointInfinity()}, nil
	}

	return &G1{p: newCurvePoint(x, y, big.NewInt(1))}, nil
}

// G2 is a point of the order-r group on the twist over GF(p²). Values are
// produced by the package's constructors and operations; the zero value is
// not usable.
type G2 struct {
	p *twistPoint
}

// G2Generator returns the generator of G₂.
func G2Generator() *G2 {
	return &G2{p: twistGen.Copy()}
}

// RandomG2 returns k and k·g where k is a random scalar in [2, Order) read
// from r (crypto/rand.Reader when r is nil).
func RandomG2(r io.Reader) (*big.Int, *G2, error) {
	k, err := randomK(r)
	if err != nil {
		return nil, nil, err
	}
	return k, ScalarBaseMultG2(k), nil
}

// ScalarBaseMultG2 returns k times the G₂ generator.
func ScalarBaseMultG2(k *big.Int) *G2 {
	return &G2{p: twistGen.MulScalar(k)}
}

// Copy returns an independent copy of the point.
func (g *G2) Copy() *G2 {
	return &G2{p: g.p.Copy()}
}

// Add returns g + h.
func (g *G2) Add(h *G2) *G2 {
	return &G2{p: g.p.Add(h.p)}
}

// Neg returns -g.
func (g *G2) Neg() *G2 {
	return &G2{p: g.p.Neg()}
}

// ScalarMult returns k·g.
func (g *G2) ScalarMult(k *big.Int) *G2 {
	return &G2{p: g.p.MulScalar(k)}
}

// IsInfinity reports whether g is the group identity.
func (g *G2) IsInfinity() bool {
	return g.p.IsInfinity()
}

// IsOnCurve reports whether the affine projection of g satisfies the twist
// equation. Unmarshal does not validate; this is also not a subgroup check.
func (g *G2) IsOnCurve() bool {
	if g.p.IsInfinity() {
		return true
	}
	return g.p.MakeAffine().IsOnCurve()
}

// Equal reports whether two points denote the same affine point.
func (g *G2) Equal(h *G2) bool {
	return g.p.Equal(h.p)
}

func (g *G2) String() string {
	return "bn256.G2" + g.p.String()
}

// Marshal converts g to its canonical 128-byte form: x.i ‖ x.real ‖ y.i ‖
// y.real affine, big-endian. The i coefficient of each GF(p²) element comes
// first. The identity serializes as x = (0,0), y = (0,1).
func (g *G2) Marshal() []byte {
	a := g.p.MakeAffine()
	buf := make([]byte, 4*numBytes)
	copy(buf[0*numBytes:], a.x.x.Bytes())
	copy(buf[1*numBytes:], a.x.y.Bytes())
	copy(buf[2*numBytes:], a.y.x.Bytes())
	copy(buf[3*numBytes:], a.y.y.Bytes())
	return buf
}

// UnmarshalG2 reads a point from its 128-byte form. An empty slice yields
// the canonical identity (x = 0, y = 1, z = 0). The length is validated;
// curve and subgroup membership are not.
func UnmarshalG2(data []byte) (*G2, error) {
	if len(data) == 0 {
		return &G2{p: &twistPoint{x: gfP2Zero(), y: gfP2One(), z: gfP2Zero(), t: gfP2Zero()}}, nil
	}
	if len(data) != 4*numBytes {
		return nil, ErrInvalidEncoding
	}

	xx := new(big.Int).SetBytes(data[0*numBytes : 1*numBytes])
	xy := new(big.Int).SetBytes(data[1*numBytes : 2*numBytes])
	yx := new(big.Int).SetBytes(data[2*numBytes : 3*numBytes])
	yy := new(big.Int).SetBytes(data[3*numBytes : 4*numBytes])

	x := newGFp2(xx, xy)
	y := newGFp2(yx, yy)

	if x.IsZero() && (y.IsZero() || y.IsOne()) {
		return &G2{p: &twistPoint{x: gfP2Zero(), y: gfP2One(), z: gfP2Zero(), t: gfP2Zero()}}, nil
	}

	return &G2{p: newTwistPoint(x, y, gfP2One())}, nil
}

// GT is an element of the order-r subgroup of GF(p¹²)*, the target group
// of the pairing. Values are produced by Pair, UnmarshalGT and the group
// operations; the zero value is not usable.
type GT struct {
	p *gfP12
}

// Pair calculates e(g1, g2), an Optimal Ate pairing. Infinity on either
// side yields the identity of GT.
func Pair(g1 *G1, g2 *G2) *GT {
	return &GT{p: optimalAte(g2.p, g1.p)}
}

// PairingCheck calculates the Optimal Ate pairing for a set of points and
// reports whether ∏ e(a[i], b[i]) is the identity. The Miller accumulator
// is shared and the final exponentiation runs once.
func PairingCheck(a []*G1, b []*G2) bool {
	acc := gfP12One()
	for i := 0; i < len(a); i++ {
		if a[i].p.IsInfinity() || b[i].p.IsInfinity() {
			continue
		}
		acc = acc.Mul(miller(b[i].p, a[i].p))
	}
	return finalExponentiation(acc).IsOne()
}

// Copy returns an independent copy of the element.
func (g *GT) Copy() *GT {
	return &GT{p: g.p.Copy()}
}

// Mul returns g·h, the group operation of GT.
func (g *GT) Mul(h *GT) *GT {
	return &GT{p: g.p.Mul(h.p)}
}

// Inverse returns g⁻¹.
func (g *GT) Inverse() *GT {
	return &GT{p: g.p.Inverse()}
}

// ScalarMult returns g^k.
func (g *GT) ScalarMult(k *big.Int) *GT {
	return &GT{p: g.p.Exp(k)}
}

// IsOne reports whether g is the identity of GT.
func (g *GT) IsOne() bool {
	return g.p.IsOne()
}

// Equal reports whether two elements are the same.
func (g *GT) Equal(h *GT) bool {
	return g.p.Equal(h.p)
}

func (g *GT) String() string {
	return "bn256.GT" + g.p.String()
}

// Marshal converts g to its 384-byte form: the twelve GF(p) components of
// the GF(p¹²) element in tower order, the i coefficient of each GF(p²)
// element first.
func (g *GT) Marshal() []byte {
	buf := make([]byte, 12*numBytes)
	for i, f := range []*gfP{
		g.p.x.x.x, g.p.x.x.y,
		g.p.x.y.x, g.p.x.y.y,
		g.p.x.z.x, g.p.x.z.y,
		g.p.y.x.x, g.p.y.x.y,
		g.p.y.y.x, g.p.y.y.y,
		g.p.y.z.x, g.p.y.z.y,
	} {
		copy(buf[i*numBytes:], f.Bytes())
	}
	return buf
}

// UnmarshalGT reads an element from its 384-byte form. Only the length is
// validated.
func UnmarshalGT(data []byte) (*GT, error) {
	if len(data) != 12*numBytes {
		return nil, ErrInvalidEncoding
	}

	read := func(i int) *gfP {
		return newGFp(new(big.Int).SetBytes(data[i*numBytes : (i+1)*numBytes]))
	}

	return &GT{p: &gfP12{
		x: &gfP6{
			x: &gfP2{x: read(0), y: read(1)},
			y: &gfP2{x: read(2), y: read(3)},
			z: &gfP2{x: read(4), y: read(5)},
		},
		y: &gfP6{
			x: &gfP2{x: read(6), y: read(7)},
			y: &gfP2{x: read(8), y: read(9)},
			z: &gfP2{x: read(10), y: read(11)},
		},
	}}, nil
}
