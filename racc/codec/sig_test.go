package codec

import (
	"testing"

	"raccoon/racc"
	"raccoon/racc/drbg"
	"raccoon/racc/params"
)

func TestSignatureEncodeDecodeRoundTrip(t *testing.T) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	msk, vk, err := racc.Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	_ = vk
	mu := racc.Digest(par.MuSz, []byte("codec round trip"))
	sig, err := racc.SignMu(msk, par, mu, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}

	enc := EncodeSignature(sig, par)
	got, err := DecodeSignature(enc, par)
	if err != nil {
		t.Fatal(err)
	}

	for i := range sig.H {
		for j := range sig.H[i] {
			if sig.H[i][j] != got.H[i][j] {
				t.Fatalf("h[%d][%d]: got %d, want %d", i, j, got.H[i][j], sig.H[i][j])
			}
		}
	}
	for i := range sig.Z {
		if sig.Z[i] != got.Z[i] {
			t.Fatalf("z[%d] mismatch after round trip", i)
		}
	}
}
