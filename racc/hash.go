package racc

import "math/bits"

// Digest is a plain multi-part SHAKE-256 squeeze, exported for the codec
// package's "tr" (public-key) and "mu" (BUFF message-binding) digests.
func Digest(outLen int, parts ...[]byte) []byte {
	return shake256(outLen, parts...)
}

// ChalHash binds a message digest mu to the rounded commitment w into the
// short challenge hash consumed by ChalPoly. It absorbs mu under a
// k-indexed header, then every coefficient of every row of w as a
// little-endian value just wide enough to hold Z_{q>>nuw}, matching the
// reference's bytes(w[i]) encoding generalized to arbitrary nuw.
func ChalHash(mu []byte, w []Poly, k, nuw, outLen int) []byte {
	qw := Q >> uint(nuw)
	blen := (bits.Len64(qw-1) + 7) / 8
	if blen == 0 {
		blen = 1
	}

	x := NewXOF().Absorb(header('h', k)).Absorb(mu)
	buf := make([]byte, blen)
	for i := 0; i < k; i++ {
		for j := 0; j < N; j++ {
			v := w[i][j]
			for b := 0; b < blen; b++ {
				buf[b] = byte(v)
				v >>= 8
			}
			x.Absorb(buf)
		}
	}
	return x.Squeeze(outLen)
}
