package webview

import (
	"regexp"
	"strings"
)

// Status holds the WebView classification for a single client.
// A Status is an immutable value: Detect produces a fresh record on every
// call and nothing mutates it afterwards.
type Status struct {
	// IOS is true when the iOS WebView heuristic matched.
	IOS bool `json:"ios"`

	// Android is true when the Android WebView heuristic matched.
	Android bool `json:"android"`
}

// IsIOS returns true if the client was classified as an iOS WebView.
func (s Status) IsIOS() bool { return s.IOS }

// IsAndroid returns true if the client was classified as an Android WebView.
func (s Status) IsAndroid() bool { return s.Android }

// InWebView returns true if either platform heuristic matched.
func (s Status) InWebView() bool { return s.IOS || s.Android }

// Combined returns true only when both platform heuristics matched on the
// same user agent. Genuine user agents never satisfy both, so a true value
// signals a spoofed or otherwise ambiguous string. It is derived from the
// two flags, never stored.
func (s Status) Combined() bool { return s.IOS && s.Android }

// User agent markers checked by Detect. All matching is case-sensitive:
// browsers emit these tokens with fixed capitalization, and the classification
// boundary must not drift for unusual casings.
const (
	// androidMarker is appended by Android's WebView implementations.
	androidMarker = "wv"

	// appleWebKitToken is present in every WebKit-based user agent.
	appleWebKitToken = "AppleWebKit"

	// safariToken is appended by standalone iOS browsers but omitted by
	// embedded WKWebView/UIWebView surfaces built on the same engine.
	safariToken = "Safari"
)

// legacyAndroidPattern matches the Android WebView signature used before the
// wv marker was introduced: a dotted Version token with Chrome appearing
// anywhere after it.
var legacyAndroidPattern = regexp.MustCompile(`Version/\d+(\.\d+)*.*Chrome`)

// Detect classifies a user agent string as an embedded WebView.
//
// Android WebViews are recognized by the wv marker or the legacy
// Version/x.y...Chrome signature. iOS WebViews are recognized by the presence
// of AppleWebKit without Safari: standalone iOS browsers always append
// Safari, embedded views omit it. The Safari check is substring-based on
// purpose; a user agent embedding the token anywhere suppresses the iOS flag,
// and downstream consumers depend on that exact boundary.
//
// Detect is a pure function. It signals no errors: an empty or unrecognized
// string yields the zero Status, failing open to "not a WebView".
func Detect(ua string) Status {
	if ua == "" {
		return Status{}
	}
	return Status{
		IOS:     strings.Contains(ua, appleWebKitToken) && !strings.Contains(ua, safariToken),
		Android: strings.Contains(ua, androidMarker) || legacyAndroidPattern.MatchString(ua),
	}
}
