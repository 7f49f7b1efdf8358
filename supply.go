package numscan

// SupplyFunc returns the next input character on each call.
// It must eventually return something that is not a digit, space, or part of
// a number, so that a scan halts; the terminating character is never
// consumed further. The helpers below return 0 past the end of their input.
type SupplyFunc func() byte

// StringSupply returns a SupplyFunc reading successive bytes of s.
func StringSupply(s string) SupplyFunc {
	var i int
	return func() byte {
		if i >= len(s) {
			return 0
		}
		c := s[i]
		i++
		return c
	}
}

// BytesSupply returns a SupplyFunc reading successive bytes of b.
// The slice is not copied; the caller must not modify it during the scan.
func BytesSupply(b []byte) SupplyFunc {
	var i int
	return func() byte {
		if i >= len(b) {
			return 0
		}
		c := b[i]
		i++
		return c
	}
}
