package racc

import "raccoon/racc/params"

func absInt64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// CheckBounds implements the signature's rejection test: the infinity norms
// of h and z must stay under BooH/Boo, and a weighted combination of their
// squared 2-norms must stay under B22. h holds k rows of centered,
// already-rounded coefficients; z holds ell rows of full Z_q coefficients
// that are re-centered here before norming.
func CheckBounds(h [][]int64, z []Poly, par params.ParamSet) bool {
	midq := int64(Q / 2)

	var hoo, h22 uint64
	for _, row := range h {
		for _, x := range row {
			a := absInt64(x)
			if a > hoo {
				hoo = a
			}
			h22 += a * a
		}
	}
	if hoo > par.BooH {
		return false
	}

	var zoo, z22 uint64
	for _, row := range z {
		for _, xv := range row {
			signed := (int64(xv)+midq)%int64(Q) - midq
			a := absInt64(signed)
			if a > zoo {
				zoo = a
			}
			a >>= 32
			z22 += a * a
		}
	}
	if zoo > par.Boo {
		return false
	}

	shift := uint(2*par.NUW - 64)
	if (h22<<shift)+z22 > par.B22 {
		return false
	}
	return true
}
