package bench

import (
	"testing"
	"time"

	"raccoon/racc"
	"raccoon/racc/drbg"
	"raccoon/racc/params"
)

func BenchmarkNTTForwardInverse(b *testing.B) {
	var p racc.Poly
	for i := range p {
		p[i] = uint64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = racc.INTT(racc.NTT(p))
	}
}

func BenchmarkExpandA(b *testing.B) {
	par := params.Raccoon128_1
	seed := make([]byte, par.AsSz)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		racc.ExpandA(seed, par.K, par.Ell)
	}
}

func BenchmarkKeygen(b *testing.B) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	for i := 0; i < b.N; i++ {
		mask := drbg.NewMaskRNG()
		if _, _, err := racc.Keygen(par, crypto, mask); err != nil {
			b.Fatal(err)
		}
	}
}

// TestTrackedKeygenSign exercises the full keygen/sign/verify path under
// Track so SnapshotAndReset has something real to report, then checks that
// every stage actually left a timing entry behind.
func TestTrackedKeygenSign(t *testing.T) {
	par := params.Raccoon128_1
	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	func() {
		defer Track(time.Now(), "keygen")
		msk, vk, err := racc.Keygen(par, crypto, mask)
		if err != nil {
			t.Fatal(err)
		}

		mu := racc.Digest(par.MuSz, []byte("tracked bench message"))

		var sig *racc.Signature
		func() {
			defer Track(time.Now(), "sign_mu")
			sig, err = racc.SignMu(msk, par, mu, crypto, mask)
			if err != nil {
				t.Fatal(err)
			}
		}()

		func() {
			defer Track(time.Now(), "verify_mu")
			if !racc.VerifyMu(vk, par, mu, sig) {
				t.Fatal("tracked signature failed to verify")
			}
		}()
	}()

	entries := SnapshotAndReset()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	wantLabels := map[string]bool{"keygen": true, "sign_mu": true, "verify_mu": true}
	for _, e := range entries {
		if !wantLabels[e.Label] {
			t.Fatalf("unexpected tracked label %q", e.Label)
		}
		if e.Dur <= 0 {
			t.Fatalf("label %q recorded non-positive duration", e.Label)
		}
	}

	if got := SnapshotAndReset(); len(got) != 0 {
		t.Fatalf("SnapshotAndReset did not clear state, got %d entries", len(got))
	}
}
