package renderingengine

import (
	"math"
	"strconv"
	"strings"
)

// RenderingEngine identifies the rendering engine of a browser: who makes it,
// which family it belongs to and which version was observed.
//
// Values are immutable and comparable, so they can be used directly as map
// keys. Two values are == exactly when Equal reports true.
type RenderingEngine struct {
	vendor      Brand
	family      Family
	version     string
	fullVersion string
}

// New creates a RenderingEngine with every field given explicitly.
// No derivation happens: version and fullVersion are stored as passed.
func New(vendor Brand, family Family, version, fullVersion string) RenderingEngine {
	return RenderingEngine{
		vendor:      vendor,
		family:      family,
		version:     version,
		fullVersion: fullVersion,
	}
}

// FromVersion creates a RenderingEngine from a single raw version string.
// The raw string becomes the full version and the short version is derived
// with Normalize.
func FromVersion(vendor Brand, family Family, raw string) RenderingEngine {
	version, fullVersion := Normalize(raw)
	return New(vendor, family, version, fullVersion)
}

// FromFloat creates a RenderingEngine from a numeric version such as 1.5.
// The number is rendered with the shortest digits that identify the float32
// and always carries a fraction digit: 1 becomes "1.0". Magnitudes below 1e-3
// or from 1e7 upwards use scientific form, so 1e7 becomes "1.0E7" and its
// short version is "1.0".
func FromFloat(vendor Brand, family Family, v float32) RenderingEngine {
	return FromVersion(vendor, family, formatFloat(v))
}

func formatFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(f, 'f', -1, 32))
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 32), "e")
	n, _ := strconv.Atoi(exp)
	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// Unknown returns the engine used when nothing could be detected.
func Unknown() RenderingEngine {
	return FromVersion(BrandUnknown, FamilyUnknown, "")
}

// Other returns the engine of a recognized vendor whose family is not listed.
func Other(vendor Brand) RenderingEngine {
	return FromVersion(vendor, FamilyOther, "")
}

// Text returns the engine of text-mode browsers.
func Text() RenderingEngine {
	return FromVersion(BrandUnknown, FamilyText, "")
}

// None returns the engine of clients that do not render content.
func None() RenderingEngine {
	return FromVersion(BrandUnknown, FamilyNone, "")
}

// Vendor returns the company behind the engine.
func (e RenderingEngine) Vendor() Brand { return e.vendor }

// Family returns the engine family.
func (e RenderingEngine) Family() Family { return e.family }

// Version returns the short version, e.g. "533.17".
func (e RenderingEngine) Version() string { return e.version }

// FullVersion returns the version as observed, e.g. "533.17.9".
func (e RenderingEngine) FullVersion() string { return e.fullVersion }

// WithFullVersion returns a copy of e with both versions re-derived from raw.
// Previous versions are discarded.
func (e RenderingEngine) WithFullVersion(raw string) RenderingEngine {
	return FromVersion(e.vendor, e.family, raw)
}

// IsUnknown returns true if the engine family is unknown or unset
func (e RenderingEngine) IsUnknown() bool {
	return e.family == FamilyUnknown || e.family == ""
}

// IsOther returns true if the engine family is other
func (e RenderingEngine) IsOther() bool { return e.family == FamilyOther }

// IsText returns true if the engine belongs to a text-mode browser
func (e RenderingEngine) IsText() bool { return e.family == FamilyText }

// IsNone returns true if the client renders nothing
func (e RenderingEngine) IsNone() bool { return e.family == FamilyNone }

// IsBrowserEngine returns true if the family is a concrete engine family
func (e RenderingEngine) IsBrowserEngine() bool {
	return e.family.IsSet() && !e.family.IsSentinel()
}

// Equal reports whether e and other describe the same engine.
// Each field matches when both sides are unset or both hold the same value.
// A nil other is never equal.
func (e RenderingEngine) Equal(other *RenderingEngine) bool {
	if other == nil {
		return false
	}
	return e.family == other.family &&
		e.vendor == other.vendor &&
		e.version == other.version &&
		e.fullVersion == other.fullVersion
}

// Hash returns a stable 32-bit hash of e.
//
// Fields are folded in the order family, vendor, version, fullVersion as
// acc = acc*3 + fieldHash, starting from 0. An unset family or vendor is
// skipped entirely. Equal values always hash equally.
func (e RenderingEngine) Hash() int32 {
	var acc int32
	if e.family.IsSet() {
		acc = combineHash(acc, e.family.Hash())
	}
	if e.vendor.IsSet() {
		acc = combineHash(acc, e.vendor.Hash())
	}
	acc = combineHash(acc, stringHash(e.version))
	acc = combineHash(acc, stringHash(e.fullVersion))
	return acc
}

// String returns "<family> <version>", followed by " <fullVersion>" when the
// full version is known.
func (e RenderingEngine) String() string {
	var b strings.Builder
	b.Grow(len(e.family) + len(e.version) + len(e.fullVersion) + 2)
	b.WriteString(e.family.String())
	b.WriteByte(' ')
	b.WriteString(e.version)
	if e.fullVersion != "" {
		b.WriteByte(' ')
		b.WriteString(e.fullVersion)
	}
	return b.String()
}
