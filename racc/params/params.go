// Package params holds the fixed ring constants and the registry of named
// Raccoon parameter sets (security level x masking order).
package params

import "math"

// Q is the fixed 49-bit composite ring modulus shared by every parameter
// set. N is the fixed ring dimension. Neither value varies across presets.
const (
	Q uint64 = 549824583172097
	N int    = 512
)

// ParamSet is an immutable, process-lifetime record describing one named
// Raccoon instance. Fields mirror the Raccoon reference's per-instance
// constructor arguments plus the derived quantities it computes once in
// __init__/_compute_metrics.
type ParamSet struct {
	Name   string
	BitSec int
	D      int // masking order: number of shares
	K      int // public matrix rows
	Ell    int // public matrix columns
	UT     int // noise width for s, t
	UW     int // noise width for r, w
	NUT    int // low bits dropped rounding t
	NUW    int // low bits dropped rounding w
	Rep    int // noise-add repetitions
	W      int // challenge polynomial Hamming weight

	// Derived sizes, all in bytes unless noted.
	Sec   int // bitsec/8, pre-image resistance
	CRH   int // 2*Sec, collision resistance
	AsSz  int // seed size, == Sec
	MuSz  int // == CRH
	TrSz  int // == CRH
	ChSz  int // == CRH
	MkSz  int // serialization key size, == Sec
	PkSz  int // encoded public key size
	SkSz  int // encoded signing key size
	SigSz int // fixed signature size

	// Derived rejection bounds, see ComputeBounds.
	B22  uint64
	Boo  uint64
	BooH uint64
}

func build(bitsec, d, k, ell, ut, uw, nut, nuw, rep, w int) ParamSet {
	p := ParamSet{
		Name: "", BitSec: bitsec, D: d, K: k, Ell: ell,
		UT: ut, UW: uw, NUT: nut, NUW: nuw, Rep: rep, W: w,
	}
	p.Sec = bitsec / 8
	p.CRH = 2 * p.Sec
	p.AsSz = p.Sec
	p.MuSz = p.CRH
	p.TrSz = p.CRH
	p.ChSz = p.CRH
	p.MkSz = p.Sec

	qBits := 49 // Q.BitLen(), fixed for the shared modulus
	p.PkSz = p.AsSz + k*N*(qBits-nut)/8
	p.SkSz = p.PkSz + (d-1)*p.MkSz + (ell*N*qBits)/8

	switch p.Sec {
	case 16:
		p.SigSz = 11524
	case 24:
		p.SigSz = 14544
	case 32:
		p.SigSz = 20330
	}

	p.B22, p.Boo, p.BooH = ComputeBounds(N, k, ell, d, rep, ut, uw, nut, nuw, w)
	return p
}

// ComputeBounds derives the rejection-sampling bound triple (B22, Boo, BooH)
// from a parameter set's raw fields, following §4.9 of the specification
// exactly (sigma, beta2, then the three floor/round expressions).
func ComputeBounds(n, k, ell, d, rep, ut, uw, nut, nuw, w int) (b22, boo, booH uint64) {
	sigma := math.Sqrt(float64(d*rep) / 12.0)

	term1 := math.Pow(math.Pow(2, float64(uw))*sigma, 2)
	term2 := float64(w) * math.Pow(math.Pow(2, float64(ut))*sigma, 2)
	inner1 := float64(k+ell) * (term1 + term2)

	term3 := math.Pow(2, float64(2*nuw)) / 6.0
	term4 := float64(w) * math.Pow(2, float64(2*nut)) / 12.0
	inner2 := float64(k) * (term3 + term4)

	beta2 := float64(n) * (inner1 + inner2)

	b22 = uint64(1.2 * beta2 / math.Pow(2, 64))
	boo = uint64(6 * math.Sqrt(beta2/(float64(n)*float64(k+ell))))
	booH = (boo + (1 << uint(nuw-1))) >> uint(nuw)
	return
}

func named(name string, p ParamSet) ParamSet {
	p.Name = name
	return p
}

// All 18 named parameter sets, as enumerated in §6.
var (
	Raccoon128_1  = named("Raccoon-128-1", build(128, 1, 5, 4, 6, 41, 42, 44, 8, 19))
	Raccoon128_2  = named("Raccoon-128-2", build(128, 2, 5, 4, 6, 41, 42, 44, 4, 19))
	Raccoon128_4  = named("Raccoon-128-4", build(128, 4, 5, 4, 6, 41, 42, 44, 2, 19))
	Raccoon128_8  = named("Raccoon-128-8", build(128, 8, 5, 4, 5, 40, 42, 44, 4, 19))
	Raccoon128_16 = named("Raccoon-128-16", build(128, 16, 5, 4, 5, 40, 42, 44, 2, 19))
	Raccoon128_32 = named("Raccoon-128-32", build(128, 32, 5, 4, 4, 39, 42, 44, 4, 19))

	Raccoon192_1  = named("Raccoon-192-1", build(192, 1, 7, 5, 7, 41, 42, 44, 8, 31))
	Raccoon192_2  = named("Raccoon-192-2", build(192, 2, 7, 5, 7, 41, 42, 44, 4, 31))
	Raccoon192_4  = named("Raccoon-192-4", build(192, 4, 7, 5, 7, 41, 42, 44, 2, 31))
	Raccoon192_8  = named("Raccoon-192-8", build(192, 8, 7, 5, 6, 40, 42, 44, 4, 31))
	Raccoon192_16 = named("Raccoon-192-16", build(192, 16, 7, 5, 6, 40, 42, 44, 2, 31))
	Raccoon192_32 = named("Raccoon-192-32", build(192, 32, 7, 5, 5, 39, 42, 44, 4, 31))

	Raccoon256_1  = named("Raccoon-256-1", build(256, 1, 9, 7, 6, 41, 42, 44, 8, 44))
	Raccoon256_2  = named("Raccoon-256-2", build(256, 2, 9, 7, 6, 41, 42, 44, 4, 44))
	Raccoon256_4  = named("Raccoon-256-4", build(256, 4, 9, 7, 6, 41, 42, 44, 2, 44))
	Raccoon256_8  = named("Raccoon-256-8", build(256, 8, 9, 7, 5, 40, 42, 44, 4, 44))
	Raccoon256_16 = named("Raccoon-256-16", build(256, 16, 9, 7, 5, 40, 42, 44, 2, 44))
	Raccoon256_32 = named("Raccoon-256-32", build(256, 32, 9, 7, 4, 39, 42, 44, 4, 44))
)

// All lists every named parameter set, in the order of §6.
var All = []ParamSet{
	Raccoon128_1, Raccoon128_2, Raccoon128_4, Raccoon128_8, Raccoon128_16, Raccoon128_32,
	Raccoon192_1, Raccoon192_2, Raccoon192_4, Raccoon192_8, Raccoon192_16, Raccoon192_32,
	Raccoon256_1, Raccoon256_2, Raccoon256_4, Raccoon256_8, Raccoon256_16, Raccoon256_32,
}

// Lookup returns the named set for (bitsec, d), and false if none exists.
func Lookup(bitsec, d int) (ParamSet, bool) {
	for _, p := range All {
		if p.BitSec == bitsec && p.D == d {
			return p, true
		}
	}
	return ParamSet{}, false
}

// ByName returns the set with the given Name, and false if none exists.
func ByName(name string) (ParamSet, bool) {
	for _, p := range All {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSet{}, false
}
