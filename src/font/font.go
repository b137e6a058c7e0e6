// Package font renders text as SVG path data using real glyph outlines.
//
// The central abstraction is the Font interface: something that can turn a
// single rune into a compact SVG path fragment plus a horizontal advance.
// TrueType implements it on top of a parsed font file, Cached adds a glyph
// LRU in front of any other Font, and RenderText walks a string left to
// right splicing the fragments together.
package font

// Point is a coordinate pair in badge viewbox units.
type Point struct {
	X uint32
	Y uint32
}

// Glyph is a rendered glyph.
type Glyph struct {
	// Path holds the glyph outline as SVG path commands, relative to the
	// glyph origin. It is nil for glyphs without an outline, such as
	// spaces. The slice may alias an internal buffer that is overwritten
	// by the next RenderGlyph call; callers that retain it must copy.
	Path []byte

	// Advance is the horizontal advance in viewbox units.
	Advance float32
}

// Font produces glyphs for badge text layout.
//
// Implementations are stateful and not safe for concurrent use. Give each
// goroutine its own Font.
type Font interface {
	// Height returns the rendered font height in viewbox units.
	Height() uint32

	// RenderGlyph renders the glyph for r. It reports false when the font
	// has no glyph for the rune.
	RenderGlyph(r rune) (Glyph, bool)

	// Scale returns the design-unit to viewbox-unit scale applied while
	// rendering paths.
	Scale() float32

	// Precision returns the number of decimals kept in path coordinates.
	// Zero rounds every coordinate to an integer.
	Precision() uint8
}
