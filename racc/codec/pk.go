package codec

import (
	"errors"

	"raccoon/racc"
	"raccoon/racc/params"
)

const qBits = 49

var errShortInput = errors.New("codec: input too short")

func polyToU64(p racc.Poly) []uint64 {
	out := make([]uint64, len(p))
	copy(out, p[:])
	return out
}

func u64ToPoly(v []int64) racc.Poly {
	var p racc.Poly
	for i, x := range v {
		p[i] = uint64(x)
	}
	return p
}

// EncodePublicKey serializes (seed, t) as: seed || t_0 || t_1 || ... || t_{k-1},
// each t_i packed at (q_bits - nut) bits per coefficient.
func EncodePublicKey(vk *racc.PublicKey, par params.ParamSet) []byte {
	b := append([]byte{}, vk.Seed...)
	width := qBits - par.NUT
	for _, ti := range vk.T {
		b = append(b, encodeBits(polyToU64(ti), width)...)
	}
	return b
}

// DecodePublicKey parses a public key and also returns the "tr" digest
// (SHAKE256 over the exact encoded prefix consumed) and the byte length
// consumed, so that signing-key decoding can reuse it.
func DecodePublicKey(b []byte, par params.ParamSet) (*racc.PublicKey, []byte, int, error) {
	if len(b) < par.AsSz {
		return nil, nil, 0, errShortInput
	}
	seed := append([]byte{}, b[:par.AsSz]...)
	l := par.AsSz
	width := qBits - par.NUT

	t := make([]racc.Poly, par.K)
	for i := 0; i < par.K; i++ {
		if l > len(b) {
			return nil, nil, 0, errShortInput
		}
		vals, consumed := decodeBits(b[l:], width, racc.N, false)
		t[i] = u64ToPoly(vals)
		l += consumed
	}

	tr := racc.Digest(par.TrSz, b[:l])
	return &racc.PublicKey{Seed: seed, T: t}, tr, l, nil
}
