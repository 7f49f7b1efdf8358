package mathutil

import "math"

// powersOfTen holds exact float64 powers of ten.
// 1e22 is the largest power of ten representable exactly in a float64.
var powersOfTen = [...]float64{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
	100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000,
	1000000000000000000, 10000000000000000000,
	1e20, 1e21, 1e22,
}

const maxExactPow = len(powersOfTen) - 1

// TimesPow10 returns f * 10^e.
// For |e| <= 22 the result is a single correctly rounded operation.
// Larger exponents are applied in chunks of 1e22 and may lose precision;
// results beyond the float64 range saturate to +-Inf or 0.
func TimesPow10(f float64, e int) float64 {
	if f == 0 || e == 0 {
		return f
	}
	if e > 0 {
		for e > maxExactPow {
			f *= powersOfTen[maxExactPow]
			e -= maxExactPow
			if math.IsInf(f, 0) {
				return f
			}
		}
		return f * powersOfTen[e]
	}
	for e < -maxExactPow {
		f /= powersOfTen[maxExactPow]
		e += maxExactPow
		if f == 0 {
			return f
		}
	}
	return f / powersOfTen[-e]
}
