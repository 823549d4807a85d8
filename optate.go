package bn256

// This file implements the optimal ate pairing over the twist. The line
// functions use the mixed-addition formulas of the dclxvi library
// (http://cryptojedi.org/papers/dclxvi-20100714.pdf), which exploit the
// evaluation point being affine with coordinates in GF(p).

// lineFunctionAdd sets r to r+p and evaluates the chord through them at the
// affine point q, returning the three GF(p²) coefficients of the line and
// the new r. p must be affine with t = 1 and r2 = p.y².
func lineFunctionAdd(r, p *twistPoint, q *curvePoint, r2 *gfP2) (a, b, c *gfP2, rOut *twistPoint) {
	bb := p.x.Mul(r.t)

	d := p.y.Add(r.z).Square().Sub(r2).Sub(r.t).Mul(r.t)

	h := bb.Sub(r.x)
	i := h.Square()

	e := i.Double().Double()

	j := h.Mul(e)
	l1 := d.Sub(r.y).Sub(r.y)

	v := r.x.Mul(e)

	rx := l1.Square().Sub(j).Sub(v.Double())
	rz := r.z.Add(h).Square().Sub(r.t).Sub(i)
	ry := v.Sub(rx).Mul(l1).Sub(r.y.Mul(j).Double())
	rt := rz.Square()

	rOut = &twistPoint{x: rx, y: ry, z: rz, t: rt}

	t := p.y.Add(rz).Square().Sub(r2).Sub(rt)
	a = l1.Mul(p.x).Double().Sub(t)
	b = l1.Neg().MulScalar(q.x).Double()
	c = rz.MulScalar(q.y).Double()

	return a, b, c, rOut
}

// lineFunctionDouble sets r to 2r and evaluates the tangent at r in the
// affine point q.
func lineFunctionDouble(r *twistPoint, q *curvePoint) (a, b, c *gfP2, rOut *twistPoint) {
	aa := r.x.Square()
	bb := r.y.Square()
	cc := bb.Square()

	d := r.x.Add(bb).Square().Sub(aa).Sub(cc).Double()

	e := aa.Double().Add(aa)
	g := e.Square()

	rx := g.Sub(d.Double())
	ry := e.Mul(d.Sub(rx)).Sub(cc.Double().Double().Double())
	rz := r.y.Add(r.z).Square().Sub(bb).Sub(r.t)
	rt := rz.Square()

	rOut = &twistPoint{x: rx, y: ry, z: rz, t: rt}

	a = r.x.Add(e).Square().Sub(aa).Sub(g).Sub(bb.Double().Double())
	b = e.Mul(r.t).Double().Neg().MulScalar(q.x)
	c = rz.Mul(r.t).Double().MulScalar(q.y)

	return a, b, c, rOut
}

// mulLine multiplies the Miller accumulator by the sparse GF(p¹²) element
// the line coefficients represent. See fp12e_mul_line in dclxvi.
func mulLine(f *gfP12, a, b, c *gfP2) *gfP12 {
	t1 := (&gfP6{x: gfP2Zero(), y: a, z: b}).Mul(f.x)
	t2 := &gfP6{x: gfP2Zero(), y: a, z: b.Add(c)}
	t3 := f.y.MulScalar(c)

	x := f.x.Add(f.y).Mul(t2).Sub(t1).Sub(t3)
	y := t3.Add(t1.MulTau())

	return &gfP12{x: x, y: y}
}

// miller runs the Miller loop over the signed digits of 6u+2 below the
// leading one, then applies the two Frobenius correction steps of the
// optimal ate formula.
func miller(q *twistPoint, p *curvePoint) *gfP12 {
	if q.IsInfinity() || p.IsInfinity() {
		return gfP12One()
	}

	f := gfP12One()

	aAffine := q.MakeAffine()
	bAffine := p.MakeAffine()
	minusA := aAffine.Neg()

	r := aAffine.Copy()
	r2 := aAffine.y.Square()

	var a, b, c *gfP2
	for i := 1; i < len(sixUPlus2NAF); i++ {
		if i != 1 {
			f = f.Square()
		}

		a, b, c, r = lineFunctionDouble(r, bAffine)
		f = mulLine(f, a, b, c)

		switch sixUPlus2NAF[i] {
		case 1:
			a, b, c, r = lineFunctionAdd(r, aAffine, bAffine, r2)
		case -1:
			a, b, c, r = lineFunctionAdd(r, minusA, bAffine, r2)
		default:
			continue
		}
		f = mulLine(f, a, b, c)
	}

	// Q1 is the p-power Frobenius of Q pulled back through the twist
	// isomorphism (x', y') -> (xω², yω³): conjugate each coordinate and
	// absorb the leftover powers of ω into ξ^((p-1)/3) and ξ^((p-1)/2).
	q1 := &twistPoint{
		x: aAffine.x.Conjugate().Mul(xi1[1]),
		y: aAffine.y.Conjugate().Mul(xi1[2]),
		z: gfP2One(),
		t: gfP2One(),
	}

	// Under the p² Frobenius the conjugations cancel: x keeps only the
	// norm factor xi2[1] ∈ GF(p), and the -1 that y picks up is dropped,
	// leaving -Q2.
	minusQ2 := &twistPoint{
		x: aAffine.x.MulScalar(xi2[1].y),
		y: aAffine.y.Copy(),
		z: gfP2One(),
		t: gfP2One(),
	}

	r2 = q1.y.Square()
	a, b, c, r = lineFunctionAdd(r, q1, bAffine, r2)
	f = mulLine(f, a, b, c)

	r2 = minusQ2.y.Square()
	a, b, c, _ = lineFunctionAdd(r, minusQ2, bAffine, r2)
	f = mulLine(f, a, b, c)

	return f
}

// finalExponentiation raises the Miller output to (p¹²-1)/Order, producing
// an element of GT. The hard part follows Algorithm 31 from
// https://eprint.iacr.org/2010/354.pdf.
func finalExponentiation(in *gfP12) *gfP12 {
	// t1 = in^(p⁶-1): the conjugate is in^(p⁶) and the explicit inverse
	// supplies the in^(-1) factor.
	t1 := in.Conjugate().Mul(in.Inverse())

	// t1 = t1^(p²+1).
	t1 = t1.Mul(t1.FrobeniusP2())

	fp1 := t1.Frobenius()
	fp2 := t1.FrobeniusP2()
	fp3 := fp2.Frobenius()

	fu1 := t1.Exp(u)
	fu2 := fu1.Exp(u)
	fu3 := fu2.Exp(u)

	fu2p := fu2.Frobenius()
	fu3p := fu3.Frobenius()

	y0 := fp1.Mul(fp2).Mul(fp3)
	y1 := t1.Conjugate()
	y2 := fu2.FrobeniusP2()
	y3 := fu1.Frobenius().Conjugate()
	y4 := fu1.Mul(fu2p).Conjugate()
	y5 := fu2.Conjugate()
	y6 := fu3.Mul(fu3p).Conjugate()

	t0 := y6.Square().Mul(y4).Mul(y5)
	t1 = y3.Mul(y5).Mul(t0)
	t0 = t0.Mul(y2)
	t1 = t1.Square().Mul(t0).Square()
	t0 = t1.Mul(y1)
	t1 = t1.Mul(y0)
	t0 = t0.Square().Mul(t1)

	return t0
}

// optimalAte computes e(p, q) for q on the twist and p on the curve.
// Infinity inputs yield the identity of GT.
func optimalAte(q *twistPoint, p *curvePoint) *gfP12 {
	if q.IsInfinity() || p.IsInfinity() {
		return gfP12One()
	}
	return finalExponentiation(miller(q, p))
}
