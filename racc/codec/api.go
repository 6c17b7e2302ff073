package codec

import (
	"raccoon/racc"
	"raccoon/racc/params"
)

// BuffMu computes the BUFF (Beyond UnForgeability Features) message
// binding: mu = SHAKE256(tr || msg), where tr is itself a digest of the
// public key. Binding the verification key into every signed message is
// what gives Raccoon its exclusive-ownership / non-resignability property.
func BuffMu(tr, msg []byte, muSz int) []byte {
	return racc.Digest(muSz, tr, msg)
}

// ByteKeygen runs key generation and returns the wire-encoded public and
// signing keys directly.
func ByteKeygen(par params.ParamSet, crypto racc.CryptoRNG, mask racc.MaskSource) (pk, sk []byte, err error) {
	msk, vk, err := racc.Keygen(par, crypto, mask)
	if err != nil {
		return nil, nil, err
	}
	pk = EncodePublicKey(vk, par)
	sk, err = EncodeSigningKey(msk, par, crypto)
	if err != nil {
		return nil, nil, err
	}
	return pk, sk, nil
}

// ByteSignature produces a detached, fixed-size signature over msg using an
// encoded signing key. Because the wire encoding of h/z is variable-length,
// an over-long encoding is simply discarded and signing restarts; an
// under-long one is zero-padded out to par.SigSz.
func ByteSignature(msg, sk []byte, par params.ParamSet, crypto racc.CryptoRNG, mask racc.MaskSource) ([]byte, error) {
	msk, tr, _, err := DecodeSigningKey(sk, par)
	if err != nil {
		return nil, err
	}
	mu := BuffMu(tr, msg, par.MuSz)

	for {
		sig, err := racc.SignMu(msk, par, mu, crypto, mask)
		if err != nil {
			return nil, err
		}
		sigB := EncodeSignature(sig, par)
		if len(sigB) > par.SigSz {
			continue
		}
		if len(sigB) < par.SigSz {
			sigB = append(sigB, make([]byte, par.SigSz-len(sigB))...)
		}
		return sigB, nil
	}
}

// ByteSign appends the signed message after its detached signature, NIST
// "envelope" style.
func ByteSign(msg, sk []byte, par params.ParamSet, crypto racc.CryptoRNG, mask racc.MaskSource) ([]byte, error) {
	sig, err := ByteSignature(msg, sk, par, crypto, mask)
	if err != nil {
		return nil, err
	}
	return append(sig, msg...), nil
}

// ByteVerify checks a detached signature sm over msg against an encoded
// public key.
func ByteVerify(msg, sm, pk []byte, par params.ParamSet) bool {
	if len(sm) < par.SigSz {
		return false
	}
	vk, tr, _, err := DecodePublicKey(pk, par)
	if err != nil {
		return false
	}
	sig, err := DecodeSignature(sm[:par.SigSz], par)
	if err != nil {
		return false
	}
	mu := BuffMu(tr, msg, par.MuSz)
	return racc.VerifyMu(vk, par, mu, sig)
}

// ByteOpen splits a signed-message envelope and verifies it.
func ByteOpen(sm, pk []byte, par params.ParamSet) (ok bool, msg []byte) {
	if len(sm) < par.SigSz {
		return false, nil
	}
	msg = sm[par.SigSz:]
	return ByteVerify(msg, sm, pk, par), msg
}
