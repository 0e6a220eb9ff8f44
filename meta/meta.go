// Package meta extracts per-document QR overrides from the small set of
// recognized <meta> declarations in a host document's head. Parsing is
// deliberately forgiving: malformed or absent metadata yields an empty map
// and the caller falls back to its defaults.
package meta

import (
	"regexp"
	"strings"
)

// Recognized metadata keys.
const (
	KeyForeground      = "qr-foreground-color"
	KeyBackground      = "qr-background-color"
	KeyDecorate        = "qr-decorate"
	KeyDecorationType  = "qr-decoration-type"
	KeyDecorationStyle = "qr-decoration-style"

	// keyTreeStyle is the legacy style key older pages still carry; it is
	// folded into KeyDecorationStyle on read.
	keyTreeStyle = "qr-tree-style"
)

var (
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	metaTagRe = regexp.MustCompile(`(?i)<meta\s+name=["']([^"']+)["']\s+content=["']([^"']+)["']`)
)

// Read returns the recognized QR metadata keys declared in the document.
// HTML comments are stripped first so commented-out example tags are not
// picked up. Unknown keys are ignored; nothing here ever fails. The first
// declaration of a key wins; legacy aliases apply only when the modern key
// is absent from the whole document, regardless of tag order.
func Read(document string) map[string]string {
	out := map[string]string{}
	legacy := map[string]string{}
	stripped := commentRe.ReplaceAllString(document, "")
	for _, m := range metaTagRe.FindAllStringSubmatch(stripped, -1) {
		name := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		switch name {
		case KeyForeground, KeyBackground, KeyDecorate, KeyDecorationType, KeyDecorationStyle:
			if _, dup := out[name]; !dup {
				out[name] = value
			}
		case keyTreeStyle:
			if _, dup := legacy[KeyDecorationStyle]; !dup {
				legacy[KeyDecorationStyle] = value
			}
		}
	}
	for k, v := range legacy {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Bool interprets a metadata toggle value the way the pages write them.
func Bool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}
