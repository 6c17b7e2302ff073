package racc

import "raccoon/racc/params"

// PublicKey is a verification key: the matrix seed and the k rows of t,
// each rounded down to Z_{q>>nut}.
type PublicKey struct {
	Seed []byte
	T    []Poly
}

// SigningKey is a signing key: the same seed and rounded t as the public
// key, plus the ell-row, d-share NTT-domain secret s_hat.
type SigningKey struct {
	Seed []byte
	T    []Poly
	SHat []MaskedPoly
}

// Signature is a message signature: the short challenge hash, the
// k rows of hint coefficients h, and the ell rows of the response z.
type Signature struct {
	CHash []byte
	H     [][]int64
	Z     []Poly
}

// Keygen runs the masked key-generation algorithm: it samples a public
// matrix seed, builds a masked secret s with noise width ut, derives
// t = A.s rounded down by nut bits, and returns both keys. crypto supplies
// the seed and per-share noise sigmas; mask supplies the zero-encoding
// blinding polynomials.
func Keygen(par params.ParamSet, crypto CryptoRNG, mask MaskSource) (*SigningKey, *PublicKey, error) {
	seed, err := crypto.RandomBytes(par.AsSz)
	if err != nil {
		return nil, nil, err
	}
	aHat := MatNTT(ExpandA(seed, par.K, par.Ell))

	sVec := make(MaskedVec, par.Ell)
	for i := range sVec {
		sVec[i] = ZeroEncoding(par.D, mask)
	}
	sVec, err = VecAddRepNoise(sVec, par.UT, par.Rep, par.Sec, crypto, mask)
	if err != nil {
		return nil, nil, err
	}

	sHatVec := make(MaskedVec, par.Ell)
	for i := range sVec {
		sHatVec[i] = make(MaskedPoly, par.D)
		for j := range sVec[i] {
			sHatVec[i][j] = NTT(sVec[i][j])
		}
	}

	tSharesHat := MulMatMVecNTT(aHat, sHatVec)
	tShares := make(MaskedVec, par.K)
	for i := range tSharesHat {
		tShares[i] = make(MaskedPoly, par.D)
		for j := range tSharesHat[i] {
			tShares[i][j] = INTT(tSharesHat[i][j])
		}
	}
	tShares, err = VecAddRepNoise(tShares, par.UT, par.Rep, par.Sec, crypto, mask)
	if err != nil {
		return nil, nil, err
	}

	qt := Q >> uint(par.NUT)
	t := make([]Poly, par.K)
	for i := range tShares {
		full := Decode(tShares[i])
		t[i] = PolyRshift(full, uint(par.NUT), qt)
	}

	msk := &SigningKey{Seed: seed, T: t, SHat: []MaskedPoly(sHatVec)}
	vk := &PublicKey{Seed: seed, T: t}
	return msk, vk, nil
}

// SignMu runs the masked, rejection-sampled Fiat-Shamir signing loop against
// an already-bound message digest mu (see the codec package for how mu is
// derived from the actual message and the BUFF-binding public key digest).
// It restarts from scratch on every bounds-check failure, as required by
// §4.9: there is no step budget, only eventual acceptance.
func SignMu(msk *SigningKey, par params.ParamSet, mu []byte, crypto CryptoRNG, mask MaskSource) (*Signature, error) {
	aHat := MatNTT(ExpandA(msk.Seed, par.K, par.Ell))
	qw := Q >> uint(par.NUW)

	for {
		rVec := make(MaskedVec, par.Ell)
		for i := range rVec {
			rVec[i] = ZeroEncoding(par.D, mask)
		}
		var err error
		rVec, err = VecAddRepNoise(rVec, par.UW, par.Rep, par.Sec, crypto, mask)
		if err != nil {
			return nil, err
		}

		rHat := make(MaskedVec, par.Ell)
		for i := range rVec {
			rHat[i] = make(MaskedPoly, par.D)
			for j := range rVec[i] {
				rHat[i][j] = NTT(rVec[i][j])
			}
		}

		wSharesHat := MulMatMVecNTT(aHat, rHat)
		wShares := make(MaskedVec, par.K)
		for i := range wSharesHat {
			wShares[i] = make(MaskedPoly, par.D)
			for j := range wSharesHat[i] {
				wShares[i][j] = INTT(wSharesHat[i][j])
			}
		}
		wShares, err = VecAddRepNoise(wShares, par.UW, par.Rep, par.Sec, crypto, mask)
		if err != nil {
			return nil, err
		}

		w := make([]Poly, par.K)
		for i := range wShares {
			w[i] = PolyRshift(Decode(wShares[i]), uint(par.NUW), qw)
		}

		cHash := ChalHash(mu, w, par.K, par.NUW, par.ChSz)
		cHat := NTT(ChalPoly(cHash, N, par.W))

		for i := range msk.SHat {
			msk.SHat[i] = Refresh(msk.SHat[i], mask)
		}
		for i := range rHat {
			rHat[i] = Refresh(rHat[i], mask)
		}

		zHat := make(MaskedVec, par.Ell)
		for i := range zHat {
			zHat[i] = make(MaskedPoly, par.D)
			for j := 0; j < par.D; j++ {
				zHat[i][j] = PolyAdd(MulNTT(cHat, msk.SHat[i][j]), rHat[i][j])
			}
			zHat[i] = Refresh(zHat[i], mask)
		}

		zNTT := DecodeVec(zHat)
		z := make([]Poly, par.Ell)
		for i := range zNTT {
			z[i] = INTT(zNTT[i])
		}

		yHat := MulMatVecNTT(aHat, zNTT)
		for i := range yHat {
			tp := NTT(PolyLshift(msk.T[i], uint(par.NUT)))
			yHat[i] = PolySub(yHat[i], MulNTT(cHat, tp))
		}

		h := make([][]int64, par.K)
		for i := range yHat {
			y := INTT(yHat[i])
			yr := PolyRshift(y, uint(par.NUW), qw)
			diff := subModGeneric(w[i], yr, qw)
			h[i] = centerSlice(diff, qw)
		}

		rVec.Zero()
		rHat.Zero()
		wShares.Zero()
		zHat.Zero()

		if !CheckBounds(h, z, par) {
			continue
		}
		return &Signature{CHash: cHash, H: h, Z: z}, nil
	}
}

func centerSlice(a Poly, mod uint64) []int64 {
	c := PolyCenter(a, mod)
	out := make([]int64, len(c))
	copy(out, c[:])
	return out
}

// VerifyMu recomputes w from the signature's h, z, and the public key, then
// checks that the challenge re-derives cHash. It is deterministic and never
// restarts.
func VerifyMu(vk *PublicKey, par params.ParamSet, mu []byte, sig *Signature) bool {
	if !CheckBounds(sig.H, sig.Z, par) {
		return false
	}

	aHat := MatNTT(ExpandA(vk.Seed, par.K, par.Ell))
	qw := Q >> uint(par.NUW)

	zNTT := make([]Poly, par.Ell)
	for i := range sig.Z {
		zNTT[i] = NTT(sig.Z[i])
	}
	cHat := NTT(ChalPoly(sig.CHash, N, par.W))

	yHat := MulMatVecNTT(aHat, zNTT)
	for i := range yHat {
		tp := NTT(PolyLshift(vk.T[i], uint(par.NUT)))
		yHat[i] = PolySub(yHat[i], MulNTT(cHat, tp))
	}

	w := make([]Poly, par.K)
	for i := range yHat {
		y := INTT(yHat[i])
		yr := PolyRshift(y, uint(par.NUW), qw)
		hPoly := FromCenteredMod(sig.H[i], qw)
		w[i] = addModGeneric(yr, hPoly, qw)
	}

	cHash2 := ChalHash(mu, w, par.K, par.NUW, par.ChSz)
	if len(cHash2) != len(sig.CHash) {
		return false
	}
	for i := range cHash2 {
		if cHash2[i] != sig.CHash[i] {
			return false
		}
	}
	return true
}

func addModGeneric(a, b Poly, mod uint64) Poly {
	var c Poly
	for i := range c {
		c[i] = (a[i] + (b[i] % mod)) % mod
	}
	return c
}
