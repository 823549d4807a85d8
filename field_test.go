package bn256

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randGFp(rng *rand.Rand) *gfP {
	return newGFp(new(big.Int).Rand(rng, P))
}

func randGFp2(rng *rand.Rand) *gfP2 {
	return &gfP2{x: randGFp(rng), y: randGFp(rng)}
}

func randGFp6(rng *rand.Rand) *gfP6 {
	return &gfP6{x: randGFp2(rng), y: randGFp2(rng), z: randGFp2(rng)}
}

func randGFp12(rng *rand.Rand) *gfP12 {
	return &gfP12{x: randGFp6(rng), y: randGFp6(rng)}
}

func TestGFpBasics(t *testing.T) {
	a := newGFp(big.NewInt(10))
	b := newGFp(big.NewInt(20))

	assert.True(t, a.Add(b).Equal(newGFp(big.NewInt(30))))
	assert.True(t, b.Sub(a).Equal(a))
	assert.True(t, a.Mul(b).Equal(newGFp(big.NewInt(200))))
	assert.True(t, a.Square().Equal(a.Mul(a)))
	assert.True(t, a.Triple().Equal(a.Add(a).Add(a)))
	assert.True(t, a.Add(a.Neg()).IsZero())
	assert.True(t, a.Mul(a.Inverse()).IsOne())

	// Canonical reduction at the boundary.
	large := new(big.Int).Add(P, big.NewInt(5))
	assert.True(t, newGFp(large).Equal(newGFp(big.NewInt(5))))
	assert.True(t, newGFp(big.NewInt(-2)).Equal(newGFp(new(big.Int).Sub(P, big.NewInt(2)))))
}

func TestGFpInverseVector(t *testing.T) {
	k := newGFp(big.NewInt(32498273234))
	want := newGFp(bigFromBase10("5113278667736460357814589262896754087238737747850571709981590827357930058526"))
	assert.True(t, k.Inverse().Equal(want))
}

func TestGFpLegendreAndSqrt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 32; i++ {
		a := randGFp(rng)
		sq := a.Square()
		require.Equal(t, 1, sq.Legendre())
		r := sq.Sqrt()
		assert.True(t, r.Square().Equal(sq))
	}
	assert.Equal(t, 0, gfPZero().Legendre())
	// 3 is a non-residue for this prime, which keeps x = 0 off the curve.
	assert.Equal(t, -1, newGFp(big.NewInt(3)).Legendre())
}

func TestGFp2Mul(t *testing.T) {
	// (3i+4)(5i+6) = 15i² + 18i + 20i + 24 = 38i + 9.
	a := newGFp2(big.NewInt(3), big.NewInt(4))
	b := newGFp2(big.NewInt(5), big.NewInt(6))
	assert.True(t, a.Mul(b).Equal(newGFp2(big.NewInt(38), big.NewInt(9))))
}

func TestGFp2SquareMatchesMul(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 32; i++ {
		a := randGFp2(rng)
		assert.True(t, a.Square().Equal(a.Mul(a)))
	}
}

func TestGFp2Inverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 32; i++ {
		a := randGFp2(rng)
		if a.IsZero() {
			continue
		}
		assert.True(t, a.Mul(a.Inverse()).IsOne())
	}
}

func TestGFp2MulXi(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 16; i++ {
		a := randGFp2(rng)
		assert.True(t, a.MulXi().Equal(a.Mul(xi)))
	}
}

func TestGFp2Conjugate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := randGFp2(rng)
	// Conjugation is the p-power Frobenius of GF(p²).
	assert.True(t, a.Conjugate().Equal(a.Exp(P)))
}

func TestGFp6MulTau(t *testing.T) {
	tau := &gfP6{x: gfP2Zero(), y: gfP2One(), z: gfP2Zero()}
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 16; i++ {
		a := randGFp6(rng)
		assert.True(t, a.MulTau().Equal(a.Mul(tau)))
	}
}

func TestGFp6SquareAndInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 16; i++ {
		a := randGFp6(rng)
		assert.True(t, a.Square().Equal(a.Mul(a)))
		if !a.IsZero() {
			assert.True(t, a.Mul(a.Inverse()).IsOne())
		}
	}
}

func TestGFp12SquareAndInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 8; i++ {
		a := randGFp12(rng)
		assert.True(t, a.Square().Equal(a.Mul(a)))
		if !a.IsZero() {
			assert.True(t, a.Mul(a.Inverse()).IsOne())
		}
	}
}

func TestGFp12Frobenius(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := randGFp12(rng)

	assert.True(t, a.Frobenius().Equal(a.Exp(P)))
	assert.True(t, a.FrobeniusP2().Equal(a.Exp(new(big.Int).Mul(P, P))))
	assert.True(t, a.Frobenius().Frobenius().Equal(a.FrobeniusP2()))
}

func TestGFp12Exp(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	a := randGFp12(rng)

	assert.True(t, a.Exp(big.NewInt(0)).IsOne())
	assert.True(t, a.Exp(big.NewInt(1)).Equal(a))
	assert.True(t, a.Exp(big.NewInt(5)).Equal(a.Mul(a).Mul(a).Mul(a).Mul(a)))

	// a^(j+k) = a^j · a^k for exponents beyond the curve size.
	j := new(big.Int).Rand(rng, Order)
	k := new(big.Int).Rand(rng, Order)
	jk := new(big.Int).Add(j, k)
	assert.True(t, a.Exp(jk).Equal(a.Exp(j).Mul(a.Exp(k))))
}
