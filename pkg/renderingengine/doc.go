// Package renderingengine models the identity of a browser rendering engine as
// reported by a user-agent detection pipeline.
//
// A RenderingEngine carries four facts:
//   - Vendor – the company behind the engine (Brand)
//   - Family – the engine lineage: Blink, Gecko, WebKit, Trident, … (Family)
//   - Version – a short numeric version such as "533.17"
//   - FullVersion – the version string exactly as observed, e.g. "533.17.9"
//
// The package never parses user-agent strings. Detection lives in
// pkg/enginedetect; this package only normalizes an already extracted version
// and defines how engines compare, hash and print.
//
// # Version normalization
//
// Normalize keeps the leading run of decimal digits, at most one '.', and the
// digits that follow it:
//
//	Normalize("1.6.8")      // "1.6", "1.6.8"
//	Normalize("533.17.9")   // "533.17", "533.17.9"
//	Normalize("12")         // "12", "12"
//	Normalize("12.")        // "12.", "12."
//	Normalize("abc123")     // "", "abc123"
//
// FromVersion and FromFloat build engines through Normalize; New stores both
// versions verbatim and performs no derivation.
//
// # Presets
//
// Unknown, Other, Text and None return the canonical sentinel engines for
// "nothing detected", "unlisted family", "text-mode browser" and "client that
// renders nothing".
//
// # Equality and hashing
//
// RenderingEngine is a comparable struct and can be used as a map key. Brand
// and Family zero values mean "unset"; two unset fields compare equal. Equal
// additionally treats a nil target as unequal.
//
// Hash folds family, vendor, version and full version, in that order, as
// acc = acc*3 + fieldHash, skipping unset tags. Field hashes use the 31-based
// polynomial over UTF-16 code units, which keeps values identical to golden
// samples produced by JVM-based detectors:
//
//	e := renderingengine.New(renderingengine.BrandMozilla, renderingengine.FamilyGecko, "1.6", "1.6.8")
//	e.Hash()   // 1040679665
//	e.String() // "gecko 1.6 1.6.8"
//
// # Concurrency
//
// Values are immutable; there is no setter. WithFullVersion returns a new
// value, so instances may be shared freely between goroutines.
package renderingengine
