package bn256

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Constants of the Fouque-Tibouchi encoding: √-3 and (√-3 - 1)/2 mod p.
var (
	sqrtNeg3         = newGFp(big.NewInt(-3)).Sqrt()
	sqrtNeg3Sub1Half = sqrtNeg3.Sub(gfPOne()).Mul(newGFp(big.NewInt(2)).Inverse())
)

// HashG1 maps a message to a point of G₁ with the indifferentiable encoding
// of Fouque and Tibouchi, "Indifferentiable Hashing to Barreto-Naehrig
// Curves" (https://www.di.ens.fr/~fouque/pub/latincrypt12.pdf). The field
// element t is derived from SHA3-512 of the message. t = 0 maps to the
// identity, the fixed choice the paper allows for that point.
func HashG1(msg []byte) *G1 {
	digest := sha3.Sum512(msg)
	t := newGFp(new(big.Int).SetBytes(digest[:]))

	if t.IsZero() {
		return &G1{p: curvePointInfinity()}
	}

	t2 := t.Square()
	chi := t.Legendre()

	// w = √-3 · t / (1 + b + t²). 1+b+t² cannot vanish: t² = -4 has no
	// root since -1 is a non-residue mod p.
	w := sqrtNeg3.Mul(t).Mul(gfPOne().Add(curveB).Add(t2).Inverse())

	g := func(x *gfP) *gfP {
		return x.Square().Mul(x).Add(curveB)
	}
	pick := func(x, gx *gfP) *G1 {
		y := gx.Sqrt()
		if chi == -1 {
			y = y.Neg()
		}
		return &G1{p: &curvePoint{x: x, y: y, z: gfPOne()}}
	}

	x1 := sqrtNeg3Sub1Half.Sub(t.Mul(w))
	gx1 := g(x1)
	if gx1.Legendre() == 1 {
		return pick(x1, gx1)
	}

	x2 := gfPOne().Neg().Sub(x1)
	gx2 := g(x2)
	if gx2.Legendre() == 1 {
		return pick(x2, gx2)
	}

	// By the theorem behind the encoding, the third candidate is always a
	// square when the first two are not.
	x3 := gfPOne().Add(w.Square().Inverse())
	return pick(x3, g(x3))
}

// Compress returns the 33-byte form of g: the affine x coordinate followed
// by the parity of y. The identity compresses to x = 0 with parity 1, its
// canonical affine encoding.
func (g *G1) Compress() []byte {
	a := g.p.MakeAffine()
	buf := make([]byte, numBytes+1)
	copy(buf, a.x.Bytes())
	buf[numBytes] = byte(a.y.BigInt().Bit(0))
	return buf
}

// DecompressG1 reads a point from its 33-byte compressed form, recovering y
// as a square root of x³ + 3 (p ≡ 3 mod 4) with the recorded parity.
func DecompressG1(data []byte) (*G1, error) {
	if len(data) != numBytes+1 {
		return nil, ErrInvalidEncoding
	}
	sign := data[numBytes]
	if sign > 1 {
		return nil, ErrInvalidEncoding
	}

	x := newGFp(new(big.Int).SetBytes(data[:numBytes]))
	if x.IsZero() && sign == 1 {
		return &G1{p: curvePointInfinity()}, nil
	}

	xxx := x.Square().Mul(x).Add(curveB)
	y := xxx.Sqrt()
	if !y.Square().Equal(xxx) {
		return nil, ErrInvalidPoint
	}
	if byte(y.BigInt().Bit(0)) != sign {
		y = y.Neg()
	}

	return &G1{p: &curvePoint{x: x, y: y, z: gfPOne()}}, nil
}

// Hash returns the SHA3-512 digest of the canonical serialization of g.
func (g *GT) Hash() []byte {
	digest := sha3.Sum512(g.Marshal())
	return digest[:]
}
