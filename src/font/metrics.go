package font

import (
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Metrics holds per-rune advances measured from a parsed font. It backs
// the approximate badge mode, which sizes rects from measured widths and
// emits <text> elements instead of glyph outlines.
//
// A Metrics is immutable after construction and safe for concurrent use.
type Metrics struct {
	name     string           // font family name
	size     float64          // point size the advances were measured at
	advances map[rune]float64 // measured glyph advances (printable ASCII)
	fallback float64          // average width for unmapped runes
}

// NewMetrics measures per-rune advances for f at the given point size.
// The name is used as the font family in output and is replaced by the
// family recorded in the font's name table when one is present.
func NewMetrics(f *sfnt.Font, name string, size float64) (*Metrics, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", name, err)
	}
	defer face.Close()

	advances := make(map[rune]float64, 95)
	var total float64
	var count int

	for r := rune(32); r <= 126; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		px := float64(adv) / 64 // fixed.Int26_6 to pixels
		advances[r] = px
		total += px
		count++
	}

	fallback := size * 0.6
	if count > 0 {
		fallback = total / float64(count)
	}

	if family, err := FamilyName(f); err == nil && family != "" {
		name = family
	}

	return &Metrics{
		name:     name,
		size:     size,
		advances: advances,
		fallback: fallback,
	}, nil
}

// TextWidth returns the width of s in pixels at the measured size.
func (m *Metrics) TextWidth(s string) float64 {
	var w float64
	for _, r := range s {
		if adv, ok := m.advances[r]; ok {
			w += adv
		} else {
			w += m.fallback
		}
	}
	return w
}

// Name returns the font family name.
func (m *Metrics) Name() string { return m.name }

// Size returns the point size the advances were measured at.
func (m *Metrics) Size() float64 { return m.size }

// FamilyName reads the font family from the name table.
func FamilyName(f *sfnt.Font) (string, error) {
	var buf sfnt.Buffer
	return f.Name(&buf, sfnt.NameIDFamily)
}
