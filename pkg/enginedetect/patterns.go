package enginedetect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

// maxVersionLength caps extracted versions.
const maxVersionLength = 20

// Pattern defines how to recognize one rendering engine in a lower-cased
// user agent string.
type Pattern struct {
	Family renderingengine.Family
	Vendor renderingengine.Brand

	// Keywords must all be present.
	Keywords []string
	// Excludes must all be absent.
	Excludes []string
	// Regex captures the raw engine version in its first group. Optional.
	Regex *regexp.Regexp
	// Accept can reject a match after the version is known. Optional.
	Accept func(version string) bool

	OrderHint int
}

// versionToken matches an engine version: a digit followed by digits,
// letters and dots ("537.36", "1.9.2b5", "7.0").
const versionToken = `([0-9][0-9a-z.]*)`

func versionRegex(prefix string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(prefix) + versionToken)
}

// Engine detection patterns in order of checking priority.
// Text browsers and non-rendering clients must precede engine patterns:
// many of them embed the engine tokens of the browsers they imitate.
var enginePatterns = []Pattern{
	{Family: renderingengine.FamilyText, Vendor: renderingengine.BrandUnknown, Keywords: []string{"lynx/"}, OrderHint: 10},
	{Family: renderingengine.FamilyText, Vendor: renderingengine.BrandUnknown, Keywords: []string{"elinks/"}, OrderHint: 11},
	{Family: renderingengine.FamilyText, Vendor: renderingengine.BrandUnknown, Keywords: []string{"links ("}, OrderHint: 12},
	{Family: renderingengine.FamilyText, Vendor: renderingengine.BrandUnknown, Keywords: []string{"w3m/"}, OrderHint: 13},

	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"bot/"}, OrderHint: 20},
	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"spider"}, OrderHint: 21},
	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"crawler"}, OrderHint: 22},
	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"curl/"}, OrderHint: 23},
	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"wget/"}, OrderHint: 24},
	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"python-requests/"}, OrderHint: 25},
	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"go-http-client/"}, OrderHint: 26},
	{Family: renderingengine.FamilyNone, Vendor: renderingengine.BrandUnknown, Keywords: []string{"okhttp/"}, OrderHint: 27},

	{
		// Legacy Edge announces itself with "Edge/", Chromium Edge with "Edg/"
		Family:    renderingengine.FamilyEdgeHTML,
		Vendor:    renderingengine.BrandMicrosoft,
		Keywords:  []string{"edge/"},
		Regex:     versionRegex("edge/"),
		OrderHint: 100,
	},
	{
		Family:    renderingengine.FamilyTrident,
		Vendor:    renderingengine.BrandMicrosoft,
		Keywords:  []string{"trident/"},
		Regex:     versionRegex("trident/"),
		OrderHint: 110,
	},
	{
		Family:    renderingengine.FamilyTrident, // IE 7 and older carry no Trident token
		Vendor:    renderingengine.BrandMicrosoft,
		Keywords:  []string{"msie "},
		Excludes:  []string{"opera"},
		OrderHint: 115,
	},
	{
		Family:    renderingengine.FamilyPresto,
		Vendor:    renderingengine.BrandOpera,
		Keywords:  []string{"presto/"},
		Regex:     versionRegex("presto/"),
		OrderHint: 120,
	},
	{
		Family:    renderingengine.FamilyPresto, // Opera 8 and older
		Vendor:    renderingengine.BrandOpera,
		Keywords:  []string{"opera"},
		Excludes:  []string{"chrome/", "applewebkit/", "gecko/"},
		OrderHint: 125,
	},
	{
		Family:    renderingengine.FamilyBlink,
		Vendor:    renderingengine.BrandGoogle,
		Keywords:  []string{"chrome/"},
		Regex:     versionRegex("chrome/"),
		Accept:    isBlinkChromeVersion,
		OrderHint: 130,
	},
	{
		Family:    renderingengine.FamilyBlink,
		Vendor:    renderingengine.BrandGoogle,
		Keywords:  []string{"chromium/"},
		Regex:     versionRegex("chromium/"),
		Accept:    isBlinkChromeVersion,
		OrderHint: 131,
	},
	{
		Family:    renderingengine.FamilyGoanna,
		Vendor:    renderingengine.BrandMoonchild,
		Keywords:  []string{"goanna/"},
		Regex:     versionRegex("goanna/"),
		OrderHint: 140,
	},
	{
		Family:    renderingengine.FamilyServo,
		Vendor:    renderingengine.BrandMozilla,
		Keywords:  []string{"servo/"},
		Regex:     versionRegex("servo/"),
		OrderHint: 145,
	},
	{
		Family:    renderingengine.FamilyGecko,
		Vendor:    renderingengine.BrandMozilla,
		Keywords:  []string{"gecko/", "rv:"},
		Excludes:  []string{"like gecko"},
		Regex:     versionRegex("rv:"),
		OrderHint: 150,
	},
	{
		Family:    renderingengine.FamilyKHTML,
		Vendor:    renderingengine.BrandKDE,
		Keywords:  []string{"khtml/"},
		Excludes:  []string{"applewebkit/"},
		Regex:     versionRegex("khtml/"),
		OrderHint: 160,
	},
	{
		Family:    renderingengine.FamilyKHTML,
		Vendor:    renderingengine.BrandKDE,
		Keywords:  []string{"konqueror/"},
		Excludes:  []string{"applewebkit/"},
		Regex:     versionRegex("konqueror/"),
		OrderHint: 165,
	},
	{
		Family:    renderingengine.FamilyNetFront,
		Vendor:    renderingengine.BrandAccess,
		Keywords:  []string{"netfront/"},
		Regex:     versionRegex("netfront/"),
		OrderHint: 170,
	},
	{
		Family:    renderingengine.FamilyWebKit,
		Vendor:    renderingengine.BrandApple,
		Keywords:  []string{"applewebkit/"},
		Regex:     versionRegex("applewebkit/"),
		OrderHint: 180,
	},
}

// isBlinkChromeVersion reports whether a Chrome version shipped Blink.
// Chrome switched from WebKit to Blink in version 28.
func isBlinkChromeVersion(version string) bool {
	major, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(major)
	return err == nil && n >= 28
}

// matchPattern checks if the lower-cased UA string satisfies the pattern keywords
func matchPattern(lowerUA string, pattern Pattern) bool {
	for _, keyword := range pattern.Keywords {
		if !strings.Contains(lowerUA, keyword) {
			return false
		}
	}
	for _, exclude := range pattern.Excludes {
		if strings.Contains(lowerUA, exclude) {
			return false
		}
	}
	return true
}

// extractVersion returns the first capture group of regex in ua, or "".
func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		if len(version) > maxVersionLength {
			version = version[:maxVersionLength]
		}
		return version
	}
	return ""
}

// matchEngine runs the patterns in order and builds the first accepted engine.
func matchEngine(lowerUA string, patterns []Pattern) (renderingengine.RenderingEngine, bool) {
	for _, pattern := range patterns {
		if !matchPattern(lowerUA, pattern) {
			continue
		}
		version := extractVersion(lowerUA, pattern.Regex)
		if pattern.Accept != nil && !pattern.Accept(version) {
			continue
		}
		return renderingengine.FromVersion(pattern.Vendor, pattern.Family, version), true
	}
	return renderingengine.Unknown(), false
}
