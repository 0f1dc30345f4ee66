package renderingengine_test

import (
	"math"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "three components", raw: "1.6.8", expected: "1.6"},
		{name: "webkit build", raw: "533.17.9", expected: "533.17"},
		{name: "empty", raw: "", expected: ""},
		{name: "letters first", raw: "abc123", expected: ""},
		{name: "digits only", raw: "12", expected: "12"},
		{name: "trailing dot kept", raw: "12.", expected: "12."},
		{name: "second dot stops", raw: "1..2", expected: "1."},
		{name: "leading dot", raw: ".5.1", expected: ".5"},
		{name: "suffix letters", raw: "1.9.2b5", expected: "1.9"},
		{name: "letters after minor", raw: "4.0b1", expected: "4.0"},
		{name: "space stops", raw: "10 beta", expected: "10"},
		{name: "dash stops", raw: "2-rc1", expected: "2"},
		{name: "only dot", raw: ".", expected: "."},
		{name: "unicode decimal digits", raw: "١٢.٣.٤", expected: "١٢.٣"},
		{name: "invalid utf8 stops", raw: "7\xff.1", expected: "7"},
		{name: "supplementary plane digits stop", raw: "\U0001D7CF\U0001D7D0", expected: ""},
		{name: "supplementary digit after ascii", raw: "1\U0001D7D0.5", expected: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			version, fullVersion := renderingengine.Normalize(tt.raw)
			assert.Equal(t, tt.expected, version)
			assert.Equal(t, tt.raw, fullVersion)
		})
	}
}

func TestNormalize_PrefixProperty(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"", "0", "1.0", "1.6.8", "533.17.9", "abc", "12.", "..", "3.x.1",
		"99.0.4844.84", "rv:109.0", "1.2.3.4.5", "0.0.0", " 1.2", "1.2 ", "2\U0001D7D0",
	}

	for _, raw := range inputs {
		version, _ := renderingengine.Normalize(raw)
		assert.True(t, strings.HasPrefix(raw, version), "%q is not a prefix of %q", version, raw)
		assert.LessOrEqual(t, strings.Count(version, "."), 1, "too many dots in %q", version)
		for _, r := range version {
			assert.True(t, r == '.' || isBMPDigit(r), "unexpected rune %q in %q", r, version)
		}

		// the scan cannot be extended by one more rune
		if len(version) < len(raw) {
			next := []rune(raw[len(version):])[0]
			extendable := isBMPDigit(next) || (next == '.' && !strings.Contains(version, "."))
			assert.False(t, extendable, "normalization of %q stopped early at %q", raw, version)
		}
	}
}

func isBMPDigit(r rune) bool {
	return r <= 0xFFFF && unicode.IsDigit(r)
}

func TestFromVersion(t *testing.T) {
	t.Parallel()

	e := renderingengine.FromVersion(renderingengine.BrandMozilla, renderingengine.FamilyGecko, "1.6.8")
	assert.Equal(t, renderingengine.BrandMozilla, e.Vendor())
	assert.Equal(t, renderingengine.FamilyGecko, e.Family())
	assert.Equal(t, "1.6", e.Version())
	assert.Equal(t, "1.6.8", e.FullVersion())
}

func TestFromFloat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		value       float32
		version     string
		fullVersion string
	}{
		{name: "whole number gets fraction", value: 1, version: "1.0", fullVersion: "1.0"},
		{name: "one point zero", value: 1.0, version: "1.0", fullVersion: "1.0"},
		{name: "one fraction digit", value: 1.5, version: "1.5", fullVersion: "1.5"},
		{name: "two fraction digits", value: 533.17, version: "533.17", fullVersion: "533.17"},
		{name: "ten", value: 10, version: "10.0", fullVersion: "10.0"},
		{name: "small", value: 0.1, version: "0.1", fullVersion: "0.1"},
		{name: "zero", value: 0, version: "0.0", fullVersion: "0.0"},
		{name: "negative", value: -2.5, version: "", fullVersion: "-2.5"},
		{name: "lower decimal bound", value: 0.001, version: "0.001", fullVersion: "0.001"},
		{name: "upper decimal bound", value: 9999999, version: "9999999.0", fullVersion: "9999999.0"},
		{name: "large switches to exponent", value: 1e7, version: "1.0", fullVersion: "1.0E7"},
		{name: "large with digits", value: 123456789, version: "1.2345679", fullVersion: "1.2345679E8"},
		{name: "negative large", value: -3e10, version: "", fullVersion: "-3.0E10"},
		{name: "tiny switches to exponent", value: 1e-4, version: "1.0", fullVersion: "1.0E-4"},
		{name: "tiny with digits", value: 2.5e-5, version: "2.5", fullVersion: "2.5E-5"},
		{name: "not a number", value: float32(math.NaN()), version: "", fullVersion: "NaN"},
		{name: "infinity", value: float32(math.Inf(1)), version: "", fullVersion: "Infinity"},
		{name: "negative infinity", value: float32(math.Inf(-1)), version: "", fullVersion: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := renderingengine.FromFloat(renderingengine.BrandOpera, renderingengine.FamilyPresto, tt.value)
			assert.Equal(t, tt.version, e.Version())
			assert.Equal(t, tt.fullVersion, e.FullVersion())
		})
	}

	t.Run("matches string form", func(t *testing.T) {
		t.Parallel()
		fromFloat := renderingengine.FromFloat(renderingengine.BrandOpera, renderingengine.FamilyPresto, 1.0)
		fromString := renderingengine.FromVersion(renderingengine.BrandOpera, renderingengine.FamilyPresto, "1.0")
		assert.Equal(t, fromString, fromFloat)
		assert.True(t, fromFloat.Equal(&fromString))
	})
}

func TestWithFullVersion(t *testing.T) {
	t.Parallel()

	original := renderingengine.FromVersion(renderingengine.BrandApple, renderingengine.FamilyWebKit, "533.17.9")
	updated := original.WithFullVersion("605.1.15")

	assert.Equal(t, "605.1", updated.Version())
	assert.Equal(t, "605.1.15", updated.FullVersion())
	assert.Equal(t, original.Vendor(), updated.Vendor())
	assert.Equal(t, original.Family(), updated.Family())

	// the receiver is untouched
	assert.Equal(t, "533.17", original.Version())
	assert.Equal(t, "533.17.9", original.FullVersion())

	// nothing carries over from the previous value
	cleared := updated.WithFullVersion("")
	assert.Equal(t, "", cleared.Version())
	assert.Equal(t, "", cleared.FullVersion())
}
