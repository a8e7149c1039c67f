package mission

import (
	"net/url"
	"unicode/utf8"
)

// Decode reverses URL component encoding of a mission description. "%XX"
// escapes are decoded and "+" is kept literally. Input with a malformed
// escape, or escapes that do not form valid UTF-8, is returned unchanged.
func Decode(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil || !utf8.ValidString(decoded) {
		return raw
	}
	return decoded
}
