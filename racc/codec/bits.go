// Package codec implements Raccoon's wire format: fixed-width bit-packing
// for keys, the variable-length unary/sign-bit run codes for signatures, the
// BUFF message-binding digest, and the byte-level keygen/sign/verify
// envelope used by callers that never touch the masked core directly.
package codec

// encodeBits packs v, "bits" low bits of each element, LSB-first across the
// whole vector, exactly the way a hardware shift register would drain it:
// a 64-bit accumulator is topped up with whole elements until it holds at
// least 8 bits and is then drained byte by byte, so elements straddle byte
// boundaries freely.
func encodeBits(v []uint64, bits int) []byte {
	var out []byte
	var x uint64
	l := 0
	mask := uint64(1)<<uint(bits) - 1
	i := 0
	for i < len(v) {
		for l < 8 && i < len(v) {
			x |= (v[i] & mask) << uint(l)
			i++
			l += bits
		}
		for l >= 8 {
			out = append(out, byte(x))
			x >>= 8
			l -= 8
		}
	}
	if l > 0 {
		out = append(out, byte(x))
	}
	return out
}

// decodeBits unpacks n integers of "bits" width each from b, returning the
// values (sign-extended from the top bit when signed is true) and the
// number of source bytes consumed.
func decodeBits(b []byte, bits, n int, signed bool) ([]int64, int) {
	var x uint64
	l := 0
	i := 0
	v := make([]int64, 0, n)

	var signBit, mask uint64
	if signed {
		signBit = uint64(1) << uint(bits-1)
		mask = signBit - 1
	} else {
		signBit = 0
		mask = uint64(1)<<uint(bits) - 1
	}

	for len(v) < n {
		for l < bits {
			x |= uint64(b[i]) << uint(l)
			i++
			l += 8
		}
		for l >= bits && len(v) < n {
			val := int64(x&mask) - int64(x&signBit)
			v = append(v, val)
			x >>= uint(bits)
			l -= bits
		}
	}
	return v, i
}
