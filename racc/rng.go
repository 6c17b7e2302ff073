package racc

// CryptoRNG supplies cryptographically secure randomness: seeds, per-call
// sigma bytes, and serialization keys. Implementations must never repeat an
// output across concurrent signers (see SPEC_FULL.md §9 on RNG separation).
type CryptoRNG interface {
	RandomBytes(n int) ([]byte, error)
}

// MaskSource supplies the non-cryptographic masking-domain randomness used
// only to blind shares in ZeroEncoding (the "masking RNG" of §4.5/§6). It is
// kept as a distinct interface from CryptoRNG because the two must never be
// backed by the same stream: a repeat in the masking RNG at most widens the
// rejection-sampling loop, but a repeat in the crypto RNG leaks secrets.
type MaskSource interface {
	RandomPoly(n int) []uint64
}
