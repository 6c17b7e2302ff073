package racc

import "golang.org/x/crypto/sha3"

// XOF is a thin duplex wrapper over SHAKE-256: absorb any number of byte
// strings, then squeeze an arbitrary-length output. It generalizes the
// teacher pack's Shake256XOF (PIOP/fs_helpers.go) to the Raccoon header
// convention instead of Fiat-Shamir grinding.
type XOF struct {
	h sha3.ShakeHash
}

// NewXOF starts a fresh SHAKE-256 duplex.
func NewXOF() *XOF {
	return &XOF{h: sha3.NewShake256()}
}

// Absorb writes p into the duplex and returns the receiver for chaining.
func (x *XOF) Absorb(p []byte) *XOF {
	if _, err := x.h.Write(p); err != nil {
		panic("racc: XOF: absorb: " + err.Error())
	}
	return x
}

// Squeeze reads n fresh bytes from the duplex.
func (x *XOF) Squeeze(n int) []byte {
	out := make([]byte, n)
	if _, err := x.h.Read(out); err != nil {
		panic("racc: XOF: squeeze: " + err.Error())
	}
	return out
}

// header builds the common 8-byte domain-separation prefix: a single ASCII
// tag byte, up to three small integer indices, zero-padded to 8 bytes.
func header(tag byte, idx ...int) []byte {
	if len(idx) > 3 {
		panic("racc: header: at most 3 indices")
	}
	h := make([]byte, 8)
	h[0] = tag
	for i, v := range idx {
		h[1+i] = byte(v)
	}
	return h
}

// shake256 is a one-shot convenience used by the signature's BUFF binding
// and by the public-key "tr" digest in the codec package.
func shake256(outLen int, parts ...[]byte) []byte {
	x := NewXOF()
	for _, p := range parts {
		x.Absorb(p)
	}
	return x.Squeeze(outLen)
}
