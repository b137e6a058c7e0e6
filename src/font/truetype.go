package font

import (
	"bytes"
	"errors"
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TrueType renders glyph outlines from a parsed TrueType or OpenType font.
type TrueType struct {
	font      *sfnt.Font
	buf       sfnt.Buffer
	ppem      fixed.Int26_6
	scale     float32
	height    uint32
	precision uint8
	path      bytes.Buffer
}

// NewTrueType prepares f for rendering at fontHeight viewbox units.
// Precision selects how many decimals glyph path coordinates keep; zero
// rounds every coordinate to an integer.
func NewTrueType(f *sfnt.Font, fontHeight float32, precision uint8) (*TrueType, error) {
	upem := f.UnitsPerEm()
	if upem == 0 {
		return nil, errors.New("font reports zero units per em")
	}

	t := &TrueType{
		font: f,
		// Loading glyphs at a ppem equal to units-per-em keeps their
		// coordinates in design units, so scaling happens exactly once,
		// inside the path sink.
		ppem:      fixed.Int26_6(upem) << 6,
		scale:     fontHeight / float32(upem),
		precision: precision,
	}

	m, err := f.Metrics(&t.buf, t.ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("reading font metrics: %w", err)
	}
	descent := float32(m.Descent) / 64
	t.height = uint32(fontHeight - descent*t.scale)

	return t, nil
}

// Height returns the rendered font height in viewbox units.
func (t *TrueType) Height() uint32 { return t.height }

// Scale returns the design-unit to viewbox-unit scale.
func (t *TrueType) Scale() float32 { return t.scale }

// Precision returns the path coordinate precision.
func (t *TrueType) Precision() uint8 { return t.precision }

// RenderGlyph renders the outline for r. The returned path aliases an
// internal buffer and is only valid until the next call.
func (t *TrueType) RenderGlyph(r rune) (Glyph, bool) {
	gi, err := t.font.GlyphIndex(&t.buf, r)
	if err != nil || gi == 0 {
		return Glyph{}, false
	}

	adv, err := t.font.GlyphAdvance(&t.buf, gi, t.ppem, xfont.HintingNone)
	if err != nil {
		return Glyph{}, false
	}

	segments, err := t.font.LoadGlyph(&t.buf, gi, t.ppem, nil)
	if err != nil {
		return Glyph{}, false
	}

	glyph := Glyph{Advance: float32(adv) / 64 * t.scale}
	if len(segments) == 0 {
		// No outline. Spaces still carry an advance.
		return glyph, true
	}

	t.path.Reset()
	sink := newPathSink(t.scale, t.precision, &t.path)
	for i, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				sink.ClosePath()
			}
			x, y := segPoint(seg.Args[0])
			sink.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := segPoint(seg.Args[0])
			sink.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			x1, y1 := segPoint(seg.Args[0])
			x, y := segPoint(seg.Args[1])
			sink.QuadTo(x1, y1, x, y)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := segPoint(seg.Args[0])
			x2, y2 := segPoint(seg.Args[1])
			x, y := segPoint(seg.Args[2])
			sink.CubeTo(x1, y1, x2, y2, x, y)
		}
	}
	sink.ClosePath()

	glyph.Path = t.path.Bytes()
	return glyph, true
}

// segPoint converts a loaded glyph point to design units with y up, the
// orientation the path sink expects.
func segPoint(p fixed.Point26_6) (x, y float32) {
	return float32(p.X) / 64, -float32(p.Y) / 64
}
