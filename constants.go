package bn256

import "math/big"

func bigFromBase10(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bn256: invalid decimal constant")
	}
	return n
}

// P is the prime of the base field GF(p),
// p = 36u⁴+36u³+24u²+6u+1 for the BN parameter u below.
var P = bigFromBase10("21888242871839275222246405745257275088696311157297823662689037894645226208583")

// Order is the number of points on the curve and the order of the three
// pairing groups, r = 36u⁴+36u³+18u²+6u+1.
var Order = bigFromBase10("21888242871839275222246405745257275088548364400416034343698204186575808495617")

// u is the BN parameter that determines both primes.
var u = bigFromBase10("4965661367192848881")

// sixUPlus2NAF is 6u+2 in signed binary form, most significant digit first.
// The Miller loop walks these digits below the leading one.
var sixUPlus2NAF = []int8{1, 1, 0, 1, 0, 0, -1, 0, 1, 1, 0, 0, 0, -1, 0, 0,
	1, 1, 0, 0, -1, 0, 0, 0, 0, 0, 1, 0, 0, -1, 0, 0,
	1, 1, 1, 0, 0, 0, 0, -1, 0, 1, 0, 0, -1, 0, 1, 1,
	0, 0, 1, 0, 0, -1, 1, 0, 0, -1, 0, 1, 0, 1, 0, 0, 0}

// curveB is the constant of the curve y² = x³ + 3 over GF(p).
var curveB = newGFp(big.NewInt(3))

// twistB is the constant of the twisted curve y² = x³ + 3/ξ over GF(p²).
var twistB = &gfP2{
	x: newGFp(bigFromBase10("266929791119991161246907387137283842545076965332900288569378510910307636690")),
	y: newGFp(bigFromBase10("19485874751759354771024239261021720505790618469301721065564631296452457478373")),
}

// curveGen is the generator of G₁.
var curveGen = &curvePoint{
	x: newGFp(big.NewInt(1)),
	y: newGFp(big.NewInt(2)),
	z: newGFp(big.NewInt(1)),
}

// twistGen is the generator of G₂.
var twistGen = &twistPoint{
	x: &gfP2{
		x: newGFp(bigFromBase10("11559732032986387107991004021392285783925812861821192530917403151452391805634")),
		y: newGFp(bigFromBase10("10857046999023057135944570762232829481370756359578518086990519993285655852781")),
	},
	y: &gfP2{
		x: newGFp(bigFromBase10("4082367875863433681332203403145435568316851327593401208105741076214120093531")),
		y: newGFp(bigFromBase10("8495653923123431417604973247489272438418190587263600148770280649306958101930")),
	},
	z: gfP2One(),
	t: gfP2One(),
}

// Exponents used by gfP inversion, square roots and Legendre symbols.
var (
	pMinus2      = new(big.Int).Sub(P, big.NewInt(2))
	pPlus1Over4  = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)
	pMinus1Over2 = new(big.Int).Rsh(new(big.Int).Sub(P, big.NewInt(1)), 1)
)

// xi is the sextic non-residue i+9 the GF(p⁶) and GF(p¹²) towers are built
// on: τ³ = ξ, ω² = τ.
var xi = &gfP2{x: newGFp(big.NewInt(1)), y: newGFp(big.NewInt(9))}

// xi1[k] = ξ^((k+1)(p-1)/6) and xi2[k] = xi1[k]·conj(xi1[k]). They carry the
// Frobenius action on the tower and the Q1/Q2 corrections of the Miller loop.
var (
	xi1 [5]*gfP2
	xi2 [5]*gfP2
)

func init() {
	pMinus1Over6 := new(big.Int).Div(new(big.Int).Sub(P, big.NewInt(1)), big.NewInt(6))
	for k := 0; k < 5; k++ {
		e := new(big.Int).Mul(pMinus1Over6, big.NewInt(int64(k+1)))
		xi1[k] = xi.Exp(e)
		xi2[k] = xi1[k].Mul(xi1[k].Conjugate())
	}
}
