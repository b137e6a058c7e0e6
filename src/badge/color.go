package badge

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedColor reports a color that is neither a known name nor a
// 3- or 6-digit hex value.
var ErrUnrecognizedColor = errors.New("unrecognized color")

// Color is a badge fill color.
type Color struct {
	hex string
}

// Named colors accepted by ParseColor.
var (
	Green  = Color{hex: "3C1"}
	Blue   = Color{hex: "08C"}
	Red    = Color{hex: "E43"}
	Yellow = Color{hex: "DB1"}
	Orange = Color{hex: "F73"}
	Purple = Color{hex: "94E"}
	Pink   = Color{hex: "E5B"}
	Grey   = Color{hex: "999"}
	Cyan   = Color{hex: "1BC"}
	Black  = Color{hex: "2A2A2A"}
)

// ParseColor parses a color name or a RGB/RRGGBB hex value. Names are
// accepted in lower or upper case; "gray" works too.
func ParseColor(s string) (Color, error) {
	switch s {
	case "green", "GREEN":
		return Green, nil
	case "blue", "BLUE":
		return Blue, nil
	case "red", "RED":
		return Red, nil
	case "yellow", "YELLOW":
		return Yellow, nil
	case "orange", "ORANGE":
		return Orange, nil
	case "purple", "PURPLE":
		return Purple, nil
	case "pink", "PINK":
		return Pink, nil
	case "grey", "GREY", "gray", "GRAY":
		return Grey, nil
	case "cyan", "CYAN":
		return Cyan, nil
	case "black", "BLACK":
		return Black, nil
	}
	if isHexColor(s) {
		return Color{hex: s}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnrecognizedColor, s)
}

// String returns the color as a hex value with a leading '#'.
func (c Color) String() string {
	return "#" + c.hex
}

// StatusColor picks a conventional color for well-known status words, and
// blue for everything else.
func StatusColor(status string) Color {
	switch status {
	case "passing", "passed", "success", "ok", "stable":
		return Green
	case "warning", "unstable":
		return Yellow
	case "failing", "failed", "error", "critical":
		return Red
	case "pending", "queued", "unknown":
		return Grey
	default:
		return Blue
	}
}

func isHexColor(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}
