// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package numscan implements reentrant, allocation-free scanning of decimal
// numeric literals. A scanned number is held as mantissa * 2^twos * 5^fives,
// so trailing zeros, decimal points, and exponents adjust integer scale
// counters instead of multiplying floats, and no precision is lost until the
// final reconstruction.
// Intended for environments where the usual conversion routines are
// unavailable or unwanted: every scan works on caller-owned state only,
// so concurrent scans never interfere.
package numscan

import (
	"math"

	"github.com/avdva/numscan/internal/mathutil"
)

// inversePowersOfTen covers the common range of fractional digit counts,
// so that reconstruction needs a single multiplication.
var inversePowersOfTen = [...]float64{
	1e-1, 1e-2, 1e-3, 1e-4, 1e-5, 1e-6,
	1e-7, 1e-8, 1e-9, 1e-10, 1e-11, 1e-12,
}

// Accumulator holds the state of a single literal scan.
// The zero value is ready to use; Accumulate resets it on every call.
// After a successful Accumulate the number scanned is
// lvalue * 2^twos * 5^fives, negated if negative is set.
type Accumulator struct {
	lvalue   uint32
	twos     int32
	fives    int32
	negative bool
	hadPoint bool
	hadExp   bool
}

// Accumulate reads one numeric literal.
// c is the first character, already read by the caller; next supplies the
// following ones. acceptNegative permits a leading minus, acceptReals permits
// a decimal point and an exponent.
// Returns false if no valid number was found. Characters may have been
// consumed from next even then; the supply is never rewound.
func (a *Accumulator) Accumulate(c byte, acceptNegative, acceptReals bool, next SupplyFunc) bool {
	*a = Accumulator{}
	hadDigit := false

	for c == ' ' || c == '\t' {
		c = next()
	}

	if c == '+' {
		c = next()
	} else if c == '-' {
		if !acceptNegative {
			return false
		}
		a.negative = true
		c = next()
	}

	// Skip leading zeros. Zeros after the decimal point still scale the
	// eventual mantissa, so they decrement both counters.
	for {
		if c == '0' {
			hadDigit = true
			if a.hadPoint {
				a.fives--
				a.twos--
			}
		} else if c == '.' && !a.hadPoint && acceptReals {
			a.hadPoint = true
		} else {
			break
		}
		c = next()
	}

	overflowed := false
	for {
		if isDigit(c) {
			hadDigit = true
			if overflowed {
				if !a.hadPoint {
					a.fives++
					a.twos++
				}
			} else {
				digit := uint32(c - '0')
				if a.lvalue <= (math.MaxUint32-9)/10 || // avoid the slow division if we can
					a.lvalue <= (math.MaxUint32-digit)/10 {
					a.lvalue = a.lvalue*10 + digit
					if a.hadPoint {
						a.fives--
						a.twos--
					}
				} else {
					// The mantissa is full. Absorb the digit via the smallest
					// factor that still fits, compensating twos/fives to keep
					// lvalue * 2^twos * 5^fives equal to the number scanned.
					fivesDigit := (digit + 1) / 2
					twosDigit := (digit + 4) / 5
					if a.lvalue <= (math.MaxUint32-fivesDigit)/5 {
						a.lvalue = a.lvalue*5 + fivesDigit
						if a.hadPoint {
							a.fives--
						} else {
							a.twos++
						}
					} else if a.lvalue <= (math.MaxUint32-twosDigit)/2 {
						a.lvalue = a.lvalue*2 + twosDigit
						if a.hadPoint {
							a.twos--
						} else {
							a.fives++
						}
					} else if !a.hadPoint {
						a.fives++
						a.twos++
					}
					overflowed = true
				}
			}
		} else if c == '.' && !a.hadPoint && acceptReals {
			a.hadPoint = true
		} else {
			break
		}
		c = next()
	}

	if !hadDigit {
		return false
	}

	if acceptReals && (c == 'E' || c == 'e') {
		c = next()

		expNegative := c == '-'
		if expNegative || c == '+' {
			c = next()
		}

		if !isDigit(c) {
			return false // E or e not followed by a number
		}

		a.hadExp = true
		var exponent int32
		for isDigit(c) {
			exponent = 10*exponent + int32(c-'0') // could overflow, but anyone using such large numbers is being very silly
			c = next()
		}

		if expNegative {
			a.twos -= exponent
			a.fives -= exponent
		} else {
			a.twos += exponent
			a.fives += exponent
		}
	}

	return true
}

// FitsInInt32 reports whether the number was given without a decimal point,
// exponent, or residual scaling, and fits an int32.
// The most negative int32 is deliberately not representable.
func (a *Accumulator) FitsInInt32() bool {
	return !a.hadPoint && !a.hadExp && a.twos == 0 && a.fives == 0 && a.lvalue <= math.MaxInt32
}

// FitsInUint32 reports whether the number was given without a decimal point,
// exponent, or residual scaling, and fits a uint32.
// A minus sign is only allowed on a zero value.
func (a *Accumulator) FitsInUint32() bool {
	return !a.hadPoint && !a.hadExp && (!a.negative || a.lvalue == 0) && a.twos == 0 && a.fives == 0
}

// Int32 returns the number as an int32. Valid only if FitsInInt32 is true.
func (a *Accumulator) Int32() int32 {
	if a.negative {
		return -int32(a.lvalue)
	}
	return int32(a.lvalue)
}

// Uint32 returns the number as a uint32. Valid only if FitsInUint32 is true.
func (a *Accumulator) Uint32() uint32 {
	return a.lvalue
}

// Float64 reconstructs lvalue * 2^twos * 5^fives.
// twos and fives differ by at most one, so the common part is applied as a
// single power of ten, then the odd factor of 2 or 5.
func (a *Accumulator) Float64() float64 {
	dvalue := float64(a.lvalue)
	tens := a.twos
	if a.fives < tens {
		tens = a.fives
	}
	if tens != 0 {
		if tens < 0 && tens >= -int32(len(inversePowersOfTen)) {
			dvalue *= inversePowersOfTen[-tens-1]
		} else {
			dvalue = mathutil.TimesPow10(dvalue, int(tens))
		}
	}
	if a.fives > a.twos {
		dvalue *= 5
	} else if a.twos > a.fives {
		dvalue *= 2
	}
	if a.negative {
		return -dvalue
	}
	return dvalue
}

// Float32 returns the number narrowed to a float32.
func (a *Accumulator) Float32() float32 {
	return float32(a.Float64())
}

// DigitsAfterPoint returns the number of decimal digits worth displaying
// after the point. Callers should clamp it to what their float type can
// meaningfully show.
func (a *Accumulator) DigitsAfterPoint() int {
	digits := a.fives
	if a.twos < digits {
		digits = a.twos
	}
	if digits < 0 {
		return int(-digits)
	}
	return 0
}

// Negative reports whether a minus sign was consumed.
func (a *Accumulator) Negative() bool {
	return a.negative
}

// HadDecimalPoint reports whether a decimal point was consumed.
func (a *Accumulator) HadDecimalPoint() bool {
	return a.hadPoint
}

// HadExponent reports whether an exponent suffix was consumed.
func (a *Accumulator) HadExponent() bool {
	return a.hadExp
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
