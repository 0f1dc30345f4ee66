package renderingengine

import "unicode"

const maxBMPRune = 0xFFFF

// Normalize derives the short version from a raw version string.
//
// The short version is the longest prefix of raw made of decimal digits with
// at most one '.'; scanning stops at the second '.' or at any other rune.
// Only digits of the Basic Multilingual Plane count, so "\U0001D7CF" stops
// the scan.
// A dot directly before the stop point is kept, so "12." stays "12.".
// fullVersion is always raw, unchanged.
func Normalize(raw string) (version, fullVersion string) {
	end := len(raw)
	dot := false
	for i, r := range raw {
		if r == '.' {
			if dot {
				end = i
				break
			}
			dot = true
			continue
		}
		if r > maxBMPRune || !unicode.IsDigit(r) {
			end = i
			break
		}
	}
	return raw[:end], raw
}
