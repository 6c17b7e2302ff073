package codec

import (
	"raccoon/racc"
	"raccoon/racc/params"
)

// kdfSeed builds the XOF('K', i, j, 0,0,0,0,0) || key input used to expand a
// per-share re-keying mask deterministically from its serialization key.
func kdfSeed(i, j int, key []byte) []byte {
	seed := make([]byte, 0, 8+len(key))
	seed = append(seed, 'K', byte(i), byte(j), 0, 0, 0, 0, 0)
	seed = append(seed, key...)
	return seed
}

// EncodeSigningKey serializes (seed, t, s): the public key prefix, then one
// fresh mk_sz-byte key per non-zero share (re-expanded at decode time rather
// than stored), folding that share's mask into share 0, and finally share 0
// itself at full q_bits precision.
func EncodeSigningKey(msk *racc.SigningKey, par params.ParamSet, crypto racc.CryptoRNG) ([]byte, error) {
	b := EncodePublicKey(&racc.PublicKey{Seed: msk.Seed, T: msk.T}, par)

	s0 := make([]racc.Poly, par.Ell)
	for i := range s0 {
		s0[i] = msk.SHat[i][0]
	}

	for j := 1; j < par.D; j++ {
		key, err := crypto.RandomBytes(par.MkSz)
		if err != nil {
			return nil, err
		}
		b = append(b, key...)
		for i := 0; i < par.Ell; i++ {
			r := racc.SampleUniformQ(kdfSeed(i, j, key), racc.N)
			s0[i] = racc.PolySub(s0[i], r)
			s0[i] = racc.PolyAdd(s0[i], msk.SHat[i][j])
		}
	}

	for _, s0i := range s0 {
		b = append(b, encodeBits(polyToU64(s0i), qBits)...)
	}
	return b, nil
}

// DecodeSigningKey parses a signing key produced by EncodeSigningKey. It
// returns the key, the "tr" public-key digest, and the number of bytes
// consumed.
func DecodeSigningKey(b []byte, par params.ParamSet) (*racc.SigningKey, []byte, int, error) {
	vk, tr, l, err := DecodePublicKey(b, par)
	if err != nil {
		return nil, nil, 0, err
	}

	ms := make([]racc.MaskedPoly, par.Ell)
	for i := range ms {
		ms[i] = make(racc.MaskedPoly, par.D)
	}

	for j := 1; j < par.D; j++ {
		if l+par.MkSz > len(b) {
			return nil, nil, 0, errShortInput
		}
		key := b[l : l+par.MkSz]
		l += par.MkSz
		for i := 0; i < par.Ell; i++ {
			ms[i][j] = racc.SampleUniformQ(kdfSeed(i, j, key), racc.N)
		}
	}

	for i := 0; i < par.Ell; i++ {
		if l > len(b) {
			return nil, nil, 0, errShortInput
		}
		vals, consumed := decodeBits(b[l:], qBits, racc.N, false)
		ms[i][0] = u64ToPoly(vals)
		l += consumed
	}

	return &racc.SigningKey{Seed: vk.Seed, T: vk.T, SHat: ms}, tr, l, nil
}
