// Package drbg provides the pluggable randomness sources the racc package
// needs: a default crypto/rand-backed CryptoRNG for ordinary operation, a
// deterministic AES-256-CTR DRBG for NIST KAT reproduction, and the masking
// LFSR that blinds shares during ZeroEncoding.
package drbg

import "crypto/rand"

// SystemRNG satisfies racc.CryptoRNG by reading from crypto/rand, the
// default collaborator racc_core.py wires in via os.urandom.
type SystemRNG struct{}

// RandomBytes returns n cryptographically secure random bytes.
func (SystemRNG) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
