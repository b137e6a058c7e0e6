package badge

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedOpacity reports an opacity outside the accepted decimal
// forms between 0 and 1.
var ErrUnrecognizedOpacity = errors.New("unrecognized opacity")

// Opacity is a fill opacity in [0, 1], held in the shortest decimal form
// SVG accepts: "0", "1", ".5", ".25".
type Opacity struct {
	val string
}

// ParseOpacity parses a decimal opacity between 0 and 1 and reduces it to
// canonical form: a leading "0" and trailing zero digits are dropped, so
// "0.50" parses to ".5". At most two fraction digits are accepted.
func ParseOpacity(s string) (Opacity, error) {
	if o, ok := parseOpacity(s); ok {
		return o, nil
	}
	return Opacity{}, fmt.Errorf("%w: %q", ErrUnrecognizedOpacity, s)
}

func parseOpacity(s string) (Opacity, bool) {
	switch len(s) {
	case 1:
		if s == "0" || s == "1" {
			return Opacity{val: s}, true
		}
	case 2:
		if s[0] == '.' && isASCIIDigit(s[1]) {
			if s[1] == '0' {
				return Opacity{val: "0"}, true
			}
			return Opacity{val: s}, true
		}
	case 3:
		switch {
		case s == "1.0":
			return Opacity{val: "1"}, true
		case s[0] == '0' && s[1] == '.':
			return parseOpacity(s[1:])
		case s[0] == '.' && isASCIIDigit(s[1]) && isASCIIDigit(s[2]):
			if s[1] == '0' && s[2] == '0' {
				return Opacity{val: "0"}, true
			}
			if s[2] == '0' {
				return Opacity{val: s[:2]}, true
			}
			return Opacity{val: s}, true
		}
	case 4:
		switch {
		case s[0] == '0' && s[1] == '.':
			return parseOpacity(s[1:])
		case s == "1.00":
			return Opacity{val: "1"}, true
		}
	}
	return Opacity{}, false
}

// String returns the canonical decimal form.
func (o Opacity) String() string {
	return o.val
}

// IsOpaque reports whether the opacity is exactly 1.
func (o Opacity) IsOpaque() bool {
	return o.val == "1"
}

// IsTransparent reports whether the opacity is exactly 0.
func (o Opacity) IsTransparent() bool {
	return o.val == "0"
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
