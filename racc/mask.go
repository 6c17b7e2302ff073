package racc

// MaskedPoly holds d additive shares of one ring element: the element it
// encodes is the coefficient-wise sum of all shares mod Q. Every masking
// gadget below is grounded on racc_core.py's ZeroEncoding/Refresh/Decode.
type MaskedPoly []Poly

// MaskedVec is a row of MaskedPoly, one per coordinate of an ell- or
// k-dimensional vector.
type MaskedVec []MaskedPoly

func polyFromUint64(v []uint64) Poly {
	var p Poly
	copy(p[:], v)
	return p
}

// NewMaskedPoly returns the all-zero d-share encoding of the zero element.
func NewMaskedPoly(d int) MaskedPoly {
	return make(MaskedPoly, d)
}

// ZeroEncoding draws a fresh, uniformly random additive sharing of zero
// across d shares. It builds the sharing with the same recursive doubling
// construction as the reference: at each step, every pair of shares
// (k, k+step) is blinded by a common random polynomial added to one half and
// subtracted from the other, which preserves the invariant that the shares
// always sum to zero while mixing entropy between every pair over log2(d)
// rounds.
func ZeroEncoding(d int, mask MaskSource) MaskedPoly {
	z := NewMaskedPoly(d)
	for step := 1; step < d; step *= 2 {
		for j := 0; j < d; j += 2 * step {
			for k := j; k < j+step && k+step < d; k++ {
				r := polyFromUint64(mask.RandomPoly(N))
				z[k] = PolyAdd(z[k], r)
				z[k+step] = PolySub(z[k+step], r)
			}
		}
	}
	return z
}

// Refresh returns a re-randomized copy of v's sharing: it adds a fresh
// ZeroEncoding, which changes every individual share while leaving their sum
// unchanged. v itself is not modified.
func Refresh(v MaskedPoly, mask MaskSource) MaskedPoly {
	z := ZeroEncoding(len(v), mask)
	out := make(MaskedPoly, len(v))
	for i := range v {
		out[i] = PolyAdd(v[i], z[i])
	}
	return out
}

// RefreshVec refreshes every row of a masked vector independently.
func RefreshVec(v MaskedVec, mask MaskSource) MaskedVec {
	out := make(MaskedVec, len(v))
	for i := range v {
		out[i] = Refresh(v[i], mask)
	}
	return out
}

// Decode collapses a masked polynomial back to its unmasked value by summing
// all shares. Callers must only do this on values intended to leave the
// masked domain (t, w, and the final z before serialization).
func Decode(v MaskedPoly) Poly {
	var acc Poly
	for _, share := range v {
		acc = PolyAdd(acc, share)
	}
	return acc
}

// DecodeVec decodes every row of a masked vector.
func DecodeVec(v MaskedVec) []Poly {
	out := make([]Poly, len(v))
	for i := range v {
		out[i] = Decode(v[i])
	}
	return out
}

// VecAddRepNoise adds rep independent draws of width-u centered uniform
// noise to every share of every row of v, then refreshes each row. Each draw
// is domain-separated by a fresh crypto-RNG sigma folded into the sample
// header together with the repetition, row, and share indices, so that no
// two signers (and no two shares) ever draw the same noise polynomial.
func VecAddRepNoise(v MaskedVec, u, rep, sec int, crypto CryptoRNG, mask MaskSource) (MaskedVec, error) {
	d := 0
	if len(v) > 0 {
		d = len(v[0])
	}
	for i := range v {
		for r := 0; r < rep; r++ {
			for j := 0; j < d; j++ {
				sigma, err := crypto.RandomBytes(sec)
				if err != nil {
					return nil, err
				}
				seed := header('u', r, i, j)
				seed = append(seed, sigma...)
				noise := SampleUniformU(seed, u, N)
				v[i][j] = PolyAdd(v[i][j], noise)
			}
		}
		v[i] = Refresh(v[i], mask)
	}
	return v, nil
}

// Zero overwrites every coefficient of every share with zero. Called on
// ephemeral masked vectors (r, its NTT image, the noised w) as soon as a
// signing attempt finishes, matching §5's resource-lifetime requirement that
// per-attempt secret state not outlive the attempt.
func (v MaskedVec) Zero() {
	for i := range v {
		for j := range v[i] {
			for k := range v[i][j] {
				v[i][j][k] = 0
			}
		}
	}
}
