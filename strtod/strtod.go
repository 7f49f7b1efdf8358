// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package strtod is a replacement for the C library's strtod family.
// The usual implementations are not reentrant and may allocate; these
// versions use only stack locals and accept any input without faulting.
// Rounding to the nearest float may be off in the last bit, and stupidly
// large exponents saturate rather than report range errors.
package strtod

import (
	"math"

	"github.com/avdva/numscan/internal/mathutil"
)

// ParseFloat64 reads a decimal real number from the beginning of s.
// It returns the value and the number of bytes consumed; a prefix of spaces
// and tabs is skipped. If s does not start with a number, it returns (0, 0).
func ParseFloat64(s string) (float64, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	// Digits before the point accumulate in a float, so that very long
	// literals trade precision for range instead of overflowing.
	valueBeforePoint := 0.0
	hadDigit := false
	for i < len(s) && isDigit(s[i]) {
		valueBeforePoint = valueBeforePoint*10 + float64(s[i]-'0')
		hadDigit = true
		i++
	}

	var valueAfterPoint uint64
	digitsAfterPoint := 0
	if i < len(s) && s[i] == '.' {
		i++
		overflowed := false
		for i < len(s) && isDigit(s[i]) {
			hadDigit = true
			if !overflowed {
				digit := uint64(s[i] - '0')
				if valueAfterPoint <= (math.MaxUint64-digit)/10 {
					valueAfterPoint = valueAfterPoint*10 + digit
					digitsAfterPoint++
				} else {
					overflowed = true
					if digit >= 5 && valueAfterPoint != math.MaxUint64 {
						valueAfterPoint++ // approximate rounding
					}
				}
			}
			i++
		}
	}

	if !hadDigit {
		return 0, 0
	}

	exponent := 0
	if i < len(s) && (s[i] == 'E' || s[i] == 'e') {
		i++

		expNegative := false
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			expNegative = s[i] == '-'
			i++
		}

		for i < len(s) && isDigit(s[i]) {
			exponent = 10*exponent + int(s[i]-'0') // could overflow, but anyone using such large numbers is being very silly
			i++
		}

		if expNegative {
			exponent = -exponent
		}
	}

	var value float64
	if valueAfterPoint != 0 {
		if valueBeforePoint == 0 {
			value = mathutil.TimesPow10(float64(valueAfterPoint), exponent-digitsAfterPoint)
		} else {
			value = mathutil.TimesPow10(mathutil.TimesPow10(float64(valueAfterPoint), -digitsAfterPoint)+valueBeforePoint, exponent)
		}
	} else {
		value = mathutil.TimesPow10(valueBeforePoint, exponent)
	}

	if negative {
		value = -value
	}
	return value, i
}

// ParseFloat32 is ParseFloat64 narrowed to a float32.
func ParseFloat32(s string) (float32, int) {
	f, n := ParseFloat64(s)
	return float32(f), n
}

// ParseUint reads an unsigned integer in the given base from the beginning
// of s, returning the value and the number of bytes consumed.
// Unlike the C library's strtoul it does not accept a leading minus sign:
// on a '-' it returns 0 and stops at the sign. Base 0 infers the base from
// the prefix (0x or 0X for 16, leading 0 for 8, otherwise 10); base 16 also
// accepts an 0x prefix. The value saturates at the maximum uint64 if the
// digits overflow it.
func ParseUint(s string, base int) (uint64, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i < len(s) && s[i] == '-' {
		return 0, i
	}
	if base < 0 || base == 1 || base > 36 {
		return 0, 0
	}
	if i < len(s) && s[i] == '+' {
		i++
	}

	if base == 0 || base == 16 {
		// Consume an 0x prefix only if a hex digit follows.
		if i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') &&
			digitValue(s[i+2]) < 16 {
			i += 2
			base = 16
		} else if base == 0 {
			if i < len(s) && s[i] == '0' {
				base = 8
			} else {
				base = 10
			}
		}
	}

	var value uint64
	digits := 0
	overflowed := false
	for i < len(s) {
		d := digitValue(s[i])
		if d >= base {
			break
		}
		digits++
		if !overflowed {
			if value > (math.MaxUint64-uint64(d))/uint64(base) {
				value = math.MaxUint64
				overflowed = true
			} else {
				value = value*uint64(base) + uint64(d)
			}
		}
		i++
	}
	if digits == 0 {
		return 0, 0
	}
	return value, i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitValue returns the value of c as a digit in bases up to 36,
// or 36 if c is not a digit at all.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}
