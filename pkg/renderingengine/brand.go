package renderingengine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Brand identifies the company or organization behind a rendering engine.
// The zero value is the unset brand.
type Brand string

// Vendor identifiers
const (
	// BrandUnknown is used when the vendor cannot be determined
	BrandUnknown Brand = "unknown"

	// BrandOther identifies a recognized engine from an unlisted vendor
	BrandOther Brand = "other"

	// BrandMicrosoft identifies Microsoft (Trident, EdgeHTML)
	BrandMicrosoft Brand = "microsoft"

	// BrandApple identifies Apple (WebKit)
	BrandApple Brand = "apple"

	// BrandGoogle identifies Google (Blink)
	BrandGoogle Brand = "google"

	// BrandMozilla identifies the Mozilla Foundation (Gecko, Servo)
	BrandMozilla Brand = "mozilla"

	// BrandOpera identifies Opera Software (Presto)
	BrandOpera Brand = "opera"

	// BrandKDE identifies the KDE project (KHTML)
	BrandKDE Brand = "kde"

	// BrandAccess identifies ACCESS Co. (NetFront)
	BrandAccess Brand = "access"

	// BrandMoonchild identifies Moonchild Productions (Goanna)
	BrandMoonchild Brand = "moonchild"

	// BrandSamsung identifies Samsung Electronics
	BrandSamsung Brand = "samsung"
)

var brandLabels = map[Brand]string{
	BrandKDE:    "KDE",
	BrandAccess: "ACCESS",
}

// String returns the brand tag text.
func (b Brand) String() string { return string(b) }

// IsSet reports whether the brand carries a value.
func (b Brand) IsSet() bool { return b != "" }

// Label returns a human-readable vendor name for reports.
func (b Brand) Label() string {
	if l, ok := brandLabels[b]; ok {
		return l
	}
	if b == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(string(b)))
}

// Hash returns the hash of the brand tag text.
func (b Brand) Hash() int32 { return stringHash(string(b)) }
