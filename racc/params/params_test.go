package params

import "testing"

func TestAllSetsHaveSaneDerivedSizes(t *testing.T) {
	for _, p := range All {
		if p.Sec <= 0 || p.CRH != 2*p.Sec {
			t.Fatalf("%s: bad sec/crh: %d/%d", p.Name, p.Sec, p.CRH)
		}
		if p.PkSz <= p.AsSz {
			t.Fatalf("%s: pk_sz %d <= as_sz %d", p.Name, p.PkSz, p.AsSz)
		}
		if p.SkSz <= p.PkSz {
			t.Fatalf("%s: sk_sz %d <= pk_sz %d", p.Name, p.SkSz, p.PkSz)
		}
		if p.SigSz == 0 {
			t.Fatalf("%s: sig_sz not set", p.Name)
		}
		if p.B22 == 0 || p.Boo == 0 || p.BooH == 0 {
			t.Fatalf("%s: zero rejection bound: b22=%d boo=%d booh=%d", p.Name, p.B22, p.Boo, p.BooH)
		}
	}
}

func TestLookupAndByName(t *testing.T) {
	p, ok := Lookup(128, 4)
	if !ok || p.Name != "Raccoon-128-4" {
		t.Fatalf("Lookup(128,4) = %+v, %v", p, ok)
	}
	q, ok := ByName("Raccoon-256-32")
	if !ok || q.BitSec != 256 || q.D != 32 {
		t.Fatalf("ByName(Raccoon-256-32) = %+v, %v", q, ok)
	}
	if _, ok := Lookup(128, 3); ok {
		t.Fatal("Lookup(128,3) should not exist")
	}
}

func TestAllHasEighteenSets(t *testing.T) {
	if len(All) != 18 {
		t.Fatalf("len(All) = %d, want 18", len(All))
	}
}
