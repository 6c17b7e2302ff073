// Package racc implements the masked Raccoon signature core: ring
// arithmetic, the negacyclic NTT, the SHAKE-256 XOF adapter, the uniform
// and challenge samplers, the masking gadgets, and the keygen/sign/verify
// signer loop with its bounds checker.
package racc

import (
	"math/big"
	"math/bits"

	"raccoon/racc/params"
)

// Poly is a length-N coefficient vector over Z_q. Every exported function
// that takes or returns a Poly treats coefficients as already reduced into
// [0, Q).
type Poly [params.N]uint64

// Q and N are re-exported from params for callers that only import racc.
const (
	Q = params.Q
	N = params.N
)

// modAdd returns (a+b) mod Q. Inputs must already be in [0,Q).
func modAdd(a, b uint64) uint64 {
	s := a + b
	if s >= Q {
		s -= Q
	}
	return s
}

// modSub returns (a-b) mod Q. Inputs must already be in [0,Q).
func modSub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return Q - (b - a)
}

// modMul returns (a*b) mod Q via a full 128-bit product followed by a
// single 128-by-64 division. Correct for any a,b < Q since Q is a 49-bit
// value and the product's high limb is therefore always < Q, satisfying
// the precondition of bits.Div64.
func modMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, Q)
	return rem
}

// modPow returns base^exp mod Q by square-and-multiply.
func modPow(base, exp uint64) uint64 {
	result := uint64(1)
	base %= Q
	for exp > 0 {
		if exp&1 == 1 {
			result = modMul(result, base)
		}
		base = modMul(base, base)
		exp >>= 1
	}
	return result
}

// modInv returns the modular inverse of a mod Q. Q is composite, so Fermat's
// little theorem does not apply; the extended Euclidean algorithm is used
// instead, via math/big since it only runs at package init time.
func modInv(a uint64) uint64 {
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(a), new(big.Int).SetUint64(Q))
	if inv == nil {
		panic("racc: modInv: value not invertible mod Q")
	}
	return inv.Uint64()
}

// PolyAdd returns a+b, coefficient-wise mod Q.
func PolyAdd(a, b Poly) Poly {
	var c Poly
	for i := range c {
		c[i] = modAdd(a[i], b[i])
	}
	return c
}

// PolySub returns a-b, coefficient-wise mod Q.
func PolySub(a, b Poly) Poly {
	var c Poly
	for i := range c {
		c[i] = modSub(a[i], b[i])
	}
	return c
}

// PolyLshift returns c[i] = (a[i] << s) mod Q.
func PolyLshift(a Poly, s uint) Poly {
	var c Poly
	shifted := modPow(2, uint64(s))
	for i := range c {
		c[i] = modMul(a[i], shifted)
	}
	return c
}

// PolyRshift performs a rounding right shift from Z_q into Z_{newMod},
// c[i] = ((a[i] + 2^(s-1)) >> s) mod newMod. Used to round t and w down by
// nut/nuw bits.
func PolyRshift(a Poly, s uint, newMod uint64) Poly {
	var c Poly
	half := uint64(1) << (s - 1)
	for i := range c {
		c[i] = ((a[i] + half) >> s) % newMod
	}
	return c
}

// PolyCenter maps every coefficient's representative in [0,mod) to the
// centered interval (-mod/2, mod/2], returned as signed int64 values.
func PolyCenter(a Poly, mod uint64) [params.N]int64 {
	var c [params.N]int64
	half := mod / 2
	for i, x := range a {
		v := x % mod
		if v > half {
			c[i] = int64(v) - int64(mod)
		} else {
			c[i] = int64(v)
		}
	}
	return c
}

// subModGeneric returns (a-b) mod mod, where mod is a possibly-small
// modulus other than Q (used when recombining values already rounded down
// to Z_{q>>nu}). Both inputs must already lie in [0,mod).
func subModGeneric(a, b Poly, mod uint64) Poly {
	var c Poly
	for i := range c {
		c[i] = (a[i] + mod - b[i]) % mod
	}
	return c
}

// FromCenteredMod builds a Poly by reducing signed coefficients into
// [0,mod), for a modulus other than Q (used to rebuild w from a
// signature's small, centered h component during verification).
func FromCenteredMod(v []int64, mod uint64) Poly {
	var c Poly
	for i, x := range v {
		if x >= 0 {
			c[i] = uint64(x) % mod
		} else {
			neg := uint64(-x) % mod
			if neg == 0 {
				c[i] = 0
			} else {
				c[i] = mod - neg
			}
		}
	}
	return c
}

// FromCentered builds a Poly by reducing signed coefficients mod Q.
func FromCentered(a []int64) Poly {
	var c Poly
	for i, x := range a {
		if x >= 0 {
			c[i] = uint64(x) % Q
		} else {
			neg := uint64(-x) % Q
			if neg == 0 {
				c[i] = 0
			} else {
				c[i] = Q - neg
			}
		}
	}
	return c
}
