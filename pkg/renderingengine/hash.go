package renderingengine

import "unicode/utf16"

// stringHash computes s[0]*31^(n-1) + ... + s[n-1] over the UTF-16 code units
// of s with 32-bit wraparound, the same value as java.lang.String.hashCode.
func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = 31*h + hi
			h = 31*h + lo
			continue
		}
		h = 31*h + r
	}
	return h
}

// combineHash folds a field hash into the running accumulator.
func combineHash(acc, field int32) int32 {
	return acc*3 + field
}
