package badge

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedStyle reports a style name other than the built-in
// presets.
var ErrUnrecognizedStyle = errors.New("unrecognized style")

// Style controls badge geometry and colors. Sizes are in pixels; the
// renderer works in hundredths of a pixel internally.
type Style struct {
	Height            uint32
	BorderRadius      uint32
	Background        Color
	TextColor         Color
	TextShadowColor   Color
	TextShadowOpacity Opacity
	TextShadowOffset  uint32
	LabelBackground   *Color    // nil draws the label rect without a fill
	LabelTextColor    *Color    // nil falls back to TextColor
	Gradient          *Gradient // nil disables the gradient overlay
}

// Gradient is a vertical fade drawn over the whole badge.
type Gradient struct {
	Start   Color
	End     *Color // nil leaves the end stop at the SVG default color
	Opacity Opacity
}

// Classic returns the classic badge style: blue background, rounded
// corners, text shadow and a subtle gradient.
func Classic() Style {
	labelBackground := Color{hex: "555"}
	return Style{
		Height:            20,
		BorderRadius:      3,
		Background:        Blue,
		TextColor:         Color{hex: "fff"},
		TextShadowColor:   Color{hex: "000"},
		TextShadowOpacity: Opacity{val: ".25"},
		TextShadowOffset:  1,
		LabelBackground:   &labelBackground,
		Gradient: &Gradient{
			Start:   Color{hex: "eee"},
			Opacity: Opacity{val: ".1"},
		},
	}
}

// Flat returns the flat badge style: classic without the gradient, with
// square corners and a fainter shadow.
func Flat() Style {
	s := Classic()
	s.Gradient = nil
	s.BorderRadius = 0
	s.TextShadowOpacity = Opacity{val: ".1"}
	return s
}

// ParseStyle returns the preset style with the given name, "classic" or
// "flat".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "classic":
		return Classic(), nil
	case "flat":
		return Flat(), nil
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnrecognizedStyle, s)
}
