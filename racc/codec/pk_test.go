package codec

import (
	"bytes"
	"testing"

	"raccoon/racc"
	"raccoon/racc/drbg"
	"raccoon/racc/params"
)

func TestPublicKeyEncodeDecodeRoundTrip(t *testing.T) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	msk, vk, err := racc.Keygen(par, crypto, mask)
	if err != nil {
		t.Fatal(err)
	}
	_ = msk

	enc := EncodePublicKey(vk, par)
	if len(enc) != par.PkSz {
		t.Fatalf("len(enc) = %d, want par.PkSz = %d", len(enc), par.PkSz)
	}

	got, tr, consumed, err := DecodePublicKey(enc, par)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != len(enc) {
		t.Fatalf("consumed %d, want %d", consumed, len(enc))
	}
	if !bytes.Equal(got.Seed, vk.Seed) {
		t.Fatal("seed mismatch after round trip")
	}
	for i := range vk.T {
		if got.T[i] != vk.T[i] {
			t.Fatalf("t[%d] mismatch after round trip", i)
		}
	}
	if len(tr) != par.TrSz {
		t.Fatalf("len(tr) = %d, want %d", len(tr), par.TrSz)
	}
}
