package drbg

import (
	"crypto/aes"
	"errors"
)

// KATDRBG reproduces the NIST ACVP/CAVP known-answer-test generator: AES-256
// used in ECB mode as a simple counter-mode byte stream, keyed and
// re-keyed from a fixed 48-byte entropy seed exactly as nist_kat_drbg.py
// does it. It is not intended as a general-purpose CSPRNG, only to
// reproduce published KAT vectors byte-for-byte.
type KATDRBG struct {
	key [32]byte
	ctr [16]byte
}

const katSeedLen = 48

// NewKATDRBG seeds a fresh generator from a 48-byte entropy string.
func NewKATDRBG(seed []byte) (*KATDRBG, error) {
	if len(seed) != katSeedLen {
		return nil, errors.New("drbg: KAT seed must be 48 bytes")
	}
	d := &KATDRBG{}
	update := d.getBytes(katSeedLen)
	for i := range update {
		update[i] ^= seed[i]
	}
	copy(d.key[:], update[:32])
	copy(d.ctr[:], update[32:])
	return d, nil
}

func (d *KATDRBG) incrementCtr() {
	for i := len(d.ctr) - 1; i >= 0; i-- {
		d.ctr[i]++
		if d.ctr[i] != 0 {
			return
		}
	}
}

func (d *KATDRBG) getBytes(n int) []byte {
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		panic("drbg: KAT DRBG: " + err.Error())
	}
	out := make([]byte, 0, n+aes.BlockSize)
	var buf [aes.BlockSize]byte
	for len(out) < n {
		d.incrementCtr()
		block.Encrypt(buf[:], d.ctr[:])
		out = append(out, buf[:]...)
	}
	return out[:n]
}

// RandomBytes returns the next num_bytes of KAT output and re-keys the
// generator, matching random_bytes in nist_kat_drbg.py.
func (d *KATDRBG) RandomBytes(n int) ([]byte, error) {
	out := d.getBytes(n)
	update := d.getBytes(katSeedLen)
	copy(d.key[:], update[:32])
	copy(d.ctr[:], update[32:])
	return out, nil
}
