package font

import "bytes"

// Missing selects how text layout treats runes the font cannot render.
type Missing int

const (
	// MissingSkip drops unrenderable runes entirely: no path, no advance,
	// no letter spacing.
	MissingSkip Missing = iota

	// MissingKeep keeps the slot: the rune renders nothing but letter
	// spacing still applies around it.
	MissingKeep
)

// RenderText appends SVG path data for text to buf, one absolute move per
// glyph starting at origin. It returns the total advance in viewbox units.
func RenderText(f Font, origin Point, text string, buf *bytes.Buffer) uint32 {
	return RenderTextSpaced(f, origin, text, 0, MissingSkip, buf)
}

// RenderTextSpaced is RenderText with extra space between glyphs, given in
// font design units, and an explicit policy for unrenderable runes.
func RenderTextSpaced(f Font, origin Point, text string, letterSpacing float32, missing Missing, buf *bytes.Buffer) uint32 {
	sink := newPathSink(f.Scale(), f.Precision(), buf)
	spacing := letterSpacing * f.Scale()

	x := float32(origin.X) + spacing
	y := float32(origin.Y)

	for _, r := range text {
		glyph, ok := f.RenderGlyph(r)
		if !ok {
			if missing == MissingKeep {
				x += spacing
			}
			continue
		}
		if glyph.Path != nil {
			sink.moveToAbs(x, y)
			buf.Write(glyph.Path)
		}
		x += glyph.Advance + spacing
	}

	return uint32(x) - origin.X
}
