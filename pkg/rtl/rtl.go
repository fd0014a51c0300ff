// Package rtl marks right-to-left text runs in converted notebook HTML so
// Hebrew and Arabic content renders with correct directionality. It is a
// pattern-based text transform, not a bidi algorithm: content outside the
// wrapped runs is returned byte-for-byte unchanged.
package rtl

import (
	"regexp"
	"strings"
)

// Hebrew, Arabic, Arabic Supplement, Arabic Extended-A.
const rtlRanges = `\x{0590}-\x{05FF}\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}`

const (
	// MarkerClass is the CSS class carried by every wrapper span.
	MarkerClass = "rtl-text"

	markerOpen  = `<span class="` + MarkerClass + `" dir="rtl">`
	markerClose = `</span>`
)

var (
	rtlCharRe = regexp.MustCompile(`[` + rtlRanges + `]`)

	// A maximal RTL run: one or more RTL characters, optionally followed
	// by further RTL words each separated by a single whitespace. Two
	// consecutive separators end the run.
	rtlRunRe = regexp.MustCompile(`[` + rtlRanges + `]+(?:[ \t][` + rtlRanges + `]+)*`)

	// Already-wrapped runs, so repeated passes never nest markers.
	markerSpanRe = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(markerOpen) + `.*?` + regexp.QuoteMeta(markerClose))
)

// ContainsRTL reports whether s contains at least one Hebrew or Arabic
// character.
func ContainsRTL(s string) bool {
	return rtlCharRe.MatchString(s)
}

// WrapSegments wraps every maximal RTL run in s with a directional marker
// span. Input with no RTL characters is returned unchanged.
func WrapSegments(s string) string {
	if !ContainsRTL(s) {
		return s
	}
	return rtlRunRe.ReplaceAllString(s, markerOpen+"$0"+markerClose)
}

// wrapOutsideMarkers applies WrapSegments only to the parts of s that are
// not already inside a marker span.
func wrapOutsideMarkers(s string) string {
	if !strings.Contains(s, markerOpen) {
		return WrapSegments(s)
	}
	var b strings.Builder
	last := 0
	for _, loc := range markerSpanRe.FindAllStringIndex(s, -1) {
		b.WriteString(WrapSegments(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(WrapSegments(s[last:]))
	return b.String()
}
