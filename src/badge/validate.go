package badge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCharacter reports badge text containing characters that would
// break out of an SVG attribute.
var ErrInvalidCharacter = errors.New("invalid character in badge text")

// validateText rejects text that cannot be embedded verbatim. Glyph paths
// carry no markup, so only '&' and '<' are dangerous.
func validateText(s string) error {
	if i := strings.IndexAny(s, "&<"); i >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidCharacter, rune(s[i]))
	}
	return nil
}

// escapeText escapes markup characters for embedding in <text> elements.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
