package renderingengine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Family is the technical lineage of a rendering engine.
// The zero value is the unset family.
type Family string

// Sentinel families
const (
	// FamilyUnknown is used when the engine cannot be determined
	FamilyUnknown Family = "unknown"

	// FamilyOther identifies an engine outside the listed families
	FamilyOther Family = "other"

	// FamilyText identifies text-mode browsers (lynx, w3m, ...)
	FamilyText Family = "text"

	// FamilyNone identifies clients that render nothing (bots, HTTP libraries)
	FamilyNone Family = "none"
)

// Engine families
const (
	FamilyBlink    Family = "blink"
	FamilyEdgeHTML Family = "edgehtml"
	FamilyGecko    Family = "gecko"
	FamilyGoanna   Family = "goanna"
	FamilyKHTML    Family = "khtml"
	FamilyNetFront Family = "netfront"
	FamilyPresto   Family = "presto"
	FamilyServo    Family = "servo"
	FamilyTrident  Family = "trident"
	FamilyWebKit   Family = "webkit"
)

var familyLabels = map[Family]string{
	FamilyEdgeHTML: "EdgeHTML",
	FamilyKHTML:    "KHTML",
	FamilyNetFront: "NetFront",
	FamilyWebKit:   "WebKit",
}

// String returns the family tag text.
func (f Family) String() string { return string(f) }

// IsSet reports whether the family carries a value.
func (f Family) IsSet() bool { return f != "" }

// IsSentinel reports whether f is one of the non-engine families
// (unknown, other, text, none).
func (f Family) IsSentinel() bool {
	switch f {
	case FamilyUnknown, FamilyOther, FamilyText, FamilyNone:
		return true
	}
	return false
}

// Label returns a human-readable family name for reports.
func (f Family) Label() string {
	if l, ok := familyLabels[f]; ok {
		return l
	}
	if f == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(string(f)))
}

// Hash returns the hash of the family tag text.
func (f Family) Hash() int32 { return stringHash(string(f)) }
