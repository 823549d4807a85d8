package bn256

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The literal vectors in this file come with signed Jacobian coordinates;
// newCurvePoint reduces them into [0, P).
var (
	testCurveA = newCurvePoint(big.NewInt(1), big.NewInt(-2), big.NewInt(1))
	testCurveB = newCurvePoint(
		bigFromBase10("79885311972705142798326482969936249219924770158001168883491309517089224520499"),
		bigFromBase10("-117978995929271306268700300631116017955026219006325540957535965864796039810533"),
		bigFromBase10("33296282955968814767393647671175158596516707523800561594047204110963892554884"),
	)
	testCurveK = big.NewInt(32498273234)
)

func assertCurvePoint(t *testing.T, p *curvePoint, x, y, z string) {
	t.Helper()
	assert.True(t, p.x.Equal(newGFp(bigFromBase10(x))), "x: got %s", p.x)
	assert.True(t, p.y.Equal(newGFp(bigFromBase10(y))), "y: got %s", p.y)
	assert.True(t, p.z.Equal(newGFp(bigFromBase10(z))), "z: got %s", p.z)
}

func TestCurvePointIsOnCurve(t *testing.T) {
	assert.True(t, testCurveA.IsOnCurve())
	// The raw-coordinate check only holds for affine representations.
	assert.False(t, testCurveB.IsOnCurve())
	assert.True(t, testCurveB.MakeAffine().IsOnCurve())
}

func TestCurvePointAdd(t *testing.T) {
	c1 := testCurveA.Add(testCurveB)
	assertCurvePoint(t, c1,
		"-8030019297004030839387309015943663447814033459498803802815950552962657336198",
		"17369015046471995974106459814434955140906951195137422436589153304383829678254",
		"17258309029904047582215572897898954019212799630461057332267253245789321192076")

	c2 := testCurveB.Add(testCurveA)
	assertCurvePoint(t, c2,
		"-29918262168843306061633714761200938536510344616796627465504988447607883544781",
		"-17369015046471995974106459814434955140906951195137422436589153304383829678254",
		"4629933841935227640030832847358321069483511526836766330421784648855905016507")

	// The Jacobian representations differ but the points agree.
	assert.True(t, c1.Equal(c2))
}

func TestCurvePointAddIdentity(t *testing.T) {
	o := curvePointInfinity()
	assert.True(t, testCurveA.Add(o).Equal(testCurveA))
	assert.True(t, o.Add(testCurveA).Equal(testCurveA))
	assert.True(t, testCurveA.Add(testCurveA.Neg()).IsInfinity())
}

func TestCurvePointMakeAffine(t *testing.T) {
	c := testCurveB.MakeAffine()
	assertCurvePoint(t, c,
		"7483470414448436599363905724866355193253920941172561288805573139617879816370",
		"128747707450769087512959846171490976965044225949551331963869426418068834555",
		"1")
	assert.True(t, c.Equal(testCurveB))

	o := curvePointInfinity().MakeAffine()
	assertCurvePoint(t, o, "0", "1", "0")
}

func TestCurvePointDouble(t *testing.T) {
	assertCurvePoint(t, testCurveB.Double(),
		"935411005489017982444253869730368550420232897228501539700537887390341768186",
		"-63329278205982424097876106502588387707621067484724644510142425134433553997206",
		"20126853473059445258968919811389535708805351903341431478509918543146689543950")

	assert.True(t, testCurveA.Double().Equal(testCurveA.Add(testCurveA)))
	assert.True(t, curvePointInfinity().Double().IsInfinity())

	sum := newCurvePoint(
		bigFromBase10("-43776485743495046546487551583707039415829214237436370882991831551060397914766"),
		bigFromBase10("-9467921253766007622712243895957299289870386820263329380995628705922624299036"),
		bigFromBase10("350834808772941454898449895915520"),
	)
	assertCurvePoint(t, sum.Double(),
		"10790957796095752226823453676166352787855536353631975827840056415610578012430",
		"-14554534243840831968271509262327092318269985762466049132223060768894044758975",
		"37546741787101857219979687028463595807101726323092929554000333841513965935888")
}

func TestCurvePointMulScalar(t *testing.T) {
	c := testCurveA.MulScalar(testCurveK)
	assertCurvePoint(t, c,
		"79885311972705142798326482969936249219924770158001168883491309517089224520499",
		"-117978995929271306268700300631116017955026219006325540957535965864796039810533",
		"33296282955968814767393647671175158596516707523800561594047204110963892554884")

	assert.True(t, testCurveA.MulScalar(big.NewInt(0)).IsInfinity())
	assert.True(t, testCurveA.MulScalar(big.NewInt(1)).Equal(testCurveA))
}

func TestCurvePointNeg(t *testing.T) {
	c := testCurveB.Neg()
	assertCurvePoint(t, c,
		"79885311972705142798326482969936249219924770158001168883491309517089224520499",
		"117978995929271306268700300631116017955026219006325540957535965864796039810533",
		"33296282955968814767393647671175158596516707523800561594047204110963892554884")
}

func TestCurveGenerator(t *testing.T) {
	require.True(t, curveGen.IsOnCurve())
	assert.True(t, curveGen.MulScalar(Order).IsInfinity(), "generator order must divide the group order")
}

func TestCurveScalarDistributivity(t *testing.T) {
	k := big.NewInt(81238467)
	m := big.NewInt(99999931)

	km := new(big.Int).Add(k, m)
	assert.True(t, curveGen.MulScalar(km).Equal(curveGen.MulScalar(k).Add(curveGen.MulScalar(m))))

	p := curveGen.MulScalar(big.NewInt(17))
	q := curveGen.MulScalar(big.NewInt(23))
	assert.True(t, p.Add(q).MulScalar(k).Equal(p.MulScalar(k).Add(q.MulScalar(k))))
}
