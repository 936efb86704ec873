// Package slug derives URL path segments from external video titles while
// keeping the platform's video token recoverable from the tail of the slug.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// maxTitleLen bounds the normalized title prefix. Truncation happens
	// before the token is appended, so the token is never cut.
	maxTitleLen = 90

	// TokenLen is the fixed length of the platform's opaque video token.
	TokenLen = 11
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Encode builds the slug for a video: normalized title, a hyphen, then the
// opaque token. An empty normalized title yields the bare token.
func Encode(title, videoID string) string {
	normalized := normalize(title)
	if normalized == "" {
		return videoID
	}
	return normalized + "-" + videoID
}

// Decode recovers the video token from a slug produced by Encode. It returns
// ok=false for anything whose tail is not a well-formed token; callers treat
// that as not-found, never as an error.
func Decode(s string) (string, bool) {
	if len(s) < TokenLen {
		return "", false
	}
	token := s[len(s)-TokenLen:]
	if !validToken(token) {
		return "", false
	}
	// A token embedded in a longer slug must sit behind the separator that
	// Encode put there, otherwise the tail is just part of the title.
	if len(s) > TokenLen && s[len(s)-TokenLen-1] != '-' {
		return "", false
	}
	return token, true
}

func normalize(title string) string {
	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // swallow leading separators
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	out := strings.TrimRight(b.String(), "-")
	if len(out) > maxTitleLen {
		out = strings.TrimRight(out[:maxTitleLen], "-")
	}
	return out
}

// IsToken reports whether s has the platform token shape: exactly TokenLen
// characters of [A-Za-z0-9_-]. Shape only; no existence check.
func IsToken(s string) bool {
	return validToken(s)
}

func validToken(t string) bool {
	if len(t) != TokenLen {
		return false
	}
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
