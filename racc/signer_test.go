package racc

import (
	"testing"

	"raccoon/racc/drbg"
	"raccoon/racc/params"
)

func TestKeygenSignVerifyRoundTrip(t *testing.T) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	msk, vk, err := Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	if len(vk.T) != par.K {
		t.Fatalf("len(vk.T) = %d, want %d", len(vk.T), par.K)
	}
	if len(msk.SHat) != par.Ell {
		t.Fatalf("len(msk.SHat) = %d, want %d", len(msk.SHat), par.Ell)
	}

	mu := Digest(par.MuSz, []byte("a test message"))

	sig, err := SignMu(msk, par, mu, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	if !VerifyMu(vk, par, mu, sig) {
		t.Fatal("freshly produced signature did not verify")
	}
}

func TestKeygenSignVerifyRoundTripMultiShare(t *testing.T) {
	// Raccoon-128-8 masks every secret and noise polynomial into d=8
	// shares, so this exercises the share-wise refresh/decode path inside
	// Keygen/SignMu/VerifyMu that a d=1 parameter set collapses to a no-op.
	par := params.Raccoon128_8
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	msk, vk, err := Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	if len(vk.T) != par.K {
		t.Fatalf("len(vk.T) = %d, want %d", len(vk.T), par.K)
	}
	if len(msk.SHat) != par.Ell {
		t.Fatalf("len(msk.SHat) = %d, want %d", len(msk.SHat), par.Ell)
	}
	for i := range msk.SHat {
		if len(msk.SHat[i]) != par.D {
			t.Fatalf("len(msk.SHat[%d]) = %d, want par.D = %d", i, len(msk.SHat[i]), par.D)
		}
	}

	mu := Digest(par.MuSz, []byte("a multi-share test message"))

	sig, err := SignMu(msk, par, mu, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	if !VerifyMu(vk, par, mu, sig) {
		t.Fatal("freshly produced d=8 signature did not verify")
	}

	sig.Z[0][0] = modAdd(sig.Z[0][0], 1)
	if VerifyMu(vk, par, mu, sig) {
		t.Fatal("d=8 signature verified after tampering with z")
	}
}

func TestVerifyMuRejectsWrongMessage(t *testing.T) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	msk, vk, err := Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	mu := Digest(par.MuSz, []byte("message A"))
	sig, err := SignMu(msk, par, mu, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}

	wrongMu := Digest(par.MuSz, []byte("message B"))
	if VerifyMu(vk, par, wrongMu, sig) {
		t.Fatal("signature verified against a different message digest")
	}
}

func TestVerifyMuRejectsTamperedZ(t *testing.T) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	msk, vk, err := Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	mu := Digest(par.MuSz, []byte("tamper test"))
	sig, err := SignMu(msk, par, mu, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}

	sig.Z[0][0] = modAdd(sig.Z[0][0], 1)
	if VerifyMu(vk, par, mu, sig) {
		t.Fatal("signature verified after tampering with z")
	}
}

func TestVerifyMuRejectsWrongKey(t *testing.T) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	msk, _, err := Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	_, vk2, err := Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}

	mu := Digest(par.MuSz, []byte("cross-key test"))
	sig, err := SignMu(msk, par, mu, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	if VerifyMu(vk2, par, mu, sig) {
		t.Fatal("signature verified against an unrelated public key")
	}
}
