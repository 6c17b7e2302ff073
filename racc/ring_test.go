package racc

import (
	"math/big"
	"math/rand"
	"testing"
)

func randPoly(r *rand.Rand) Poly {
	var p Poly
	for i := range p {
		p[i] = uint64(r.Int63n(int64(Q)))
	}
	return p
}

func TestModMulAgreesWithBigArithmetic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	bq := new(big.Int).SetUint64(Q)
	for i := 0; i < 1000; i++ {
		a := uint64(r.Int63n(int64(Q)))
		b := uint64(r.Int63n(int64(Q)))
		got := modMul(a, b)

		want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		want.Mod(want, bq)
		if got != want.Uint64() {
			t.Fatalf("modMul(%d,%d) = %d, want %s", a, b, got, want.String())
		}
	}
}

func TestModInvIsTrueInverse(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := uint64(r.Int63n(int64(Q-1))) + 1
		inv := modInv(a)
		if modMul(a, inv) != 1 {
			t.Fatalf("modInv(%d)=%d is not a true inverse", a, inv)
		}
	}
}

func TestPolyAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	a := randPoly(r)
	b := randPoly(r)
	sum := PolyAdd(a, b)
	back := PolySub(sum, b)
	if back != a {
		t.Fatalf("PolySub(PolyAdd(a,b),b) != a")
	}
}

func TestPolyLshiftRshiftRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	a := randPoly(r)
	const s = 10
	// PolyLshift reduces mod Q, so only coefficients below Q>>s survive the
	// shift without wrapping; keep a in that range.
	for i := range a {
		a[i] %= Q >> s
	}
	shifted := PolyLshift(a, s)
	// Rounding right-shift should recover a within the rounding error of s bits.
	back := PolyRshift(shifted, s, Q)
	for i := range a {
		diff := int64(back[i]) - int64(a[i])
		if diff > 1 || diff < -1 {
			t.Fatalf("coefficient %d: round-trip off by %d", i, diff)
		}
	}
}

func TestPolyCenterRange(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	a := randPoly(r)
	c := PolyCenter(a, Q)
	half := int64(Q / 2)
	for i, x := range c {
		if x > half || x <= -half-1 {
			t.Fatalf("coefficient %d = %d outside centered range", i, x)
		}
	}
}

func TestFromCenteredInvertsPolyCenter(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	a := randPoly(r)
	c := PolyCenter(a, Q)
	back := FromCentered(c[:])
	if back != a {
		t.Fatalf("FromCentered(PolyCenter(a)) != a")
	}
}
