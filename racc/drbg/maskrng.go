package drbg

const (
	mrgLoInit uint64 = 0x8796A5B4C3D2E1F0
	mrgHiInit uint64 = 0x0F1E2D3C4B5A6978
	mrgHiMask uint64 = 0x7FFFFFFFFFFFFFFF
	mrgQ      uint64 = 549824583172097
	mrgQMask  uint64 = 0x1FFFFFFFFFFFF
)

// MaskRNG is the masking-domain LFSR-127 generator used to blind shares in
// ZeroEncoding: period 2^127-1, primitive polynomial x^127+x^64+1. It is
// explicitly not cryptographically secure; that's the point, since its
// output never needs to resist an attacker, only to mix entropy between
// share pairs. Splitting the 127-bit state register v_r into a 64-bit lo
// half (bits 0-63) and a 63-bit hi half (bits 64-126) lets every step run
// as plain uint64 arithmetic instead of math/big.
type MaskRNG struct {
	lo, hi uint64
}

// NewMaskRNG returns a generator seeded at the fixed LFSR initial state, the
// same value every Raccoon instance starts from (MaskRandom() is always
// constructed with no seed in the reference).
func NewMaskRNG() *MaskRNG {
	return &MaskRNG{lo: mrgLoInit, hi: mrgHiInit}
}

func (m *MaskRNG) step() {
	x := ((m.hi << 1) | (m.lo >> 63)) ^ (m.hi >> 62)
	newHi := (m.lo ^ x) & mrgHiMask
	m.lo = x
	m.hi = newHi
}

func (m *MaskRNG) uniformQ() uint64 {
	for {
		m.step()
		z := m.lo & mrgQMask
		if z < mrgQ {
			return z
		}
	}
}

// RandomPoly returns n values uniform in [0,Q), draining the LFSR.
func (m *MaskRNG) RandomPoly(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = m.uniformQ()
	}
	return out
}
