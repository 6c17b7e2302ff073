package racc

import "raccoon/racc/params"

const qBits = 49 // params.Q.BitLen(); fixed since Q is fixed.

func leUint(b []byte) uint64 {
	var x uint64
	for i := len(b) - 1; i >= 0; i-- {
		x = (x << 8) | uint64(b[i])
	}
	return x
}

// sampleUniformQFromXOF drains n uniform coefficients in [0,Q) from x via
// rejection sampling on 7-byte little-endian reads masked to 49 bits. This
// branches only on public XOF output, which §5 explicitly allows.
func sampleUniformQFromXOF(x *XOF, n int) Poly {
	const blen = (qBits + 7) / 8
	mask := uint64(1)<<qBits - 1
	var out Poly
	i := 0
	for i < n {
		z := leUint(x.Squeeze(blen)) & mask
		if z < Q {
			out[i] = z
			i++
		}
	}
	return out
}

// SampleUniformQ rejection-samples n coefficients uniform in [0,Q) from a
// caller-prepared seed (the seed must already include any domain-separation
// header).
func SampleUniformQ(seed []byte, n int) Poly {
	return sampleUniformQFromXOF(NewXOF().Absorb(seed), n)
}

// ExpandA expands a seed into the public k x ell matrix A in coefficient
// domain. Cell (i,j) is sampled from SHAKE256(['A',i,j,0,0,0,0,0] || seed).
func ExpandA(seed []byte, k, ell int) [][]Poly {
	a := make([][]Poly, k)
	for i := 0; i < k; i++ {
		a[i] = make([]Poly, ell)
		for j := 0; j < ell; j++ {
			x := NewXOF().Absorb(header('A', i, j)).Absorb(seed)
			a[i][j] = sampleUniformQFromXOF(x, params.N)
		}
	}
	return a
}

// SampleUniformU draws n coefficients from the signed, centered uniform
// distribution of width 2^u (no rejection; the distribution is exact),
// reduced into [0,Q).
func SampleUniformU(seed []byte, u, n int) Poly {
	blen := (u + 7) / 8
	mask := uint64(1)<<uint(u) - 1
	mid := uint64(1) << uint(u-1)
	x := NewXOF().Absorb(seed)
	var out Poly
	for i := 0; i < n; i++ {
		v := leUint(x.Squeeze(blen)) & mask
		v ^= mid // two's-complement sign flip
		signed := int64(v) - int64(mid)
		if signed >= 0 {
			out[i] = uint64(signed) % Q
		} else {
			neg := uint64(-signed) % Q
			if neg == 0 {
				out[i] = 0
			} else {
				out[i] = Q - neg
			}
		}
	}
	return out
}

// ChalPoly derives a ternary, Hamming-weight-w polynomial from a challenge
// hash via SHAKE256(['c',w,0,0,0,0,0,0] || cHash).
func ChalPoly(cHash []byte, n, w int) Poly {
	maskN := n - 1
	bits := 0
	for v := maskN; v > 0; v >>= 1 {
		bits++
	}
	bits++ // one extra bit for the sign
	blen := (bits + 7) / 8

	x := NewXOF().Absorb(header('c', w)).Absorb(cHash)

	var c Poly
	wt := 0
	for wt < w {
		v := leUint(x.Squeeze(blen))
		sign := v & 1
		idx := int((v >> 1)) & maskN
		if c[idx] == 0 {
			if sign == 1 {
				c[idx] = Q - 1 // -1 mod Q
			} else {
				c[idx] = 1
			}
			wt++
		}
	}
	return c
}
