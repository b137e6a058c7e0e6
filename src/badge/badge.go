// Package badge renders SVG status badges.
//
// A badge is a small pill with an optional label section on the left and a
// status section on the right. Text is drawn as real glyph outlines taken
// from a font, so the result looks identical everywhere and needs no font
// to be installed on the viewing side. WriteBadgeApprox offers a lighter
// alternative that emits plain <text> elements sized from measured glyph
// advances.
package badge

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sofmeright/badgen/src/font"
	"github.com/sofmeright/badgen/src/fonts"
	"golang.org/x/image/font/sfnt"
)

// The renderer works in hundredths of a pixel so glyph coordinates
// survive integer arithmetic. A style height of 20px maps onto a viewbox
// 2000 units tall.
const (
	viewboxScaleUnit = 100
	viewboxHeight    = 20 * viewboxScaleUnit
	sideMargin       = 5 * viewboxScaleUnit
	middleMargin     = 11 * viewboxScaleUnit
	lineHeight       = 11 * viewboxScaleUnit
)

// Element ids inside the generated document.
const (
	maskID       = "m"
	gradientID   = "g"
	labelPathID  = "l"
	statusPathID = "s"
)

// Badge renders status, and label unless empty, into a standalone SVG
// document using the default built-in font.
func Badge(style *Style, status, label string) (string, error) {
	var b strings.Builder
	b.Grow(8192)
	if err := WriteBadge(&b, style, status, label); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteBadge renders a badge to w using the default built-in font. A
// fresh glyph cache is built per call; use WriteBadgeWith to amortize
// rendering across many badges.
func WriteBadge(w io.Writer, style *Style, status, label string) error {
	f, err := DefaultFont()
	if err != nil {
		return err
	}
	var scratch bytes.Buffer
	scratch.Grow(4096)
	return WriteBadgeWith(w, style, status, label, f, &scratch)
}

// NewFont wraps a parsed font for badge rendering, with glyph caching and
// integer path coordinates.
func NewFont(f *sfnt.Font) (font.Font, error) {
	return NewFontPrecision(f, 0)
}

// NewFontPrecision is NewFont with an explicit number of decimals kept in
// path coordinates. Higher precision renders marginally crisper curves at
// the cost of larger documents.
func NewFontPrecision(f *sfnt.Font, precision uint8) (font.Font, error) {
	tt, err := font.NewTrueType(f, lineHeight, precision)
	if err != nil {
		return nil, err
	}
	return font.NewCached(tt), nil
}

// DefaultFont returns a freshly wrapped default built-in font. Each call
// yields an independent renderer, safe for one goroutine.
func DefaultFont() (font.Font, error) {
	f, err := fonts.Default()
	if err != nil {
		return nil, err
	}
	return NewFont(f)
}

// WriteBadgeWith renders a badge to w using a caller-supplied font and
// scratch buffer. Reusing both across calls avoids re-rendering glyphs
// and reallocating; neither may be shared between goroutines.
func WriteBadgeWith(w io.Writer, style *Style, status, label string, f font.Font, scratch *bytes.Buffer) error {
	if err := validateText(status); err != nil {
		return fmt.Errorf("badge status: %w", err)
	}
	if err := validateText(label); err != nil {
		return fmt.Errorf("badge label: %w", err)
	}

	scratch.Reset()

	viewboxScale := float32(viewboxHeight) / float32(style.Height)
	lineMargin := (viewboxHeight - f.Height()) / 2

	statusPathOffset := 0
	nextTextOrigin := font.Point{
		X: sideMargin,
		Y: viewboxHeight - lineMargin,
	}

	var labelWidth uint32
	if label != "" {
		labelWidth = font.RenderText(f, nextTextOrigin, label, scratch)
		statusPathOffset = scratch.Len()
		nextTextOrigin.X += labelWidth + middleMargin
	}

	// A label whose runes all render to nothing behaves like no label.
	hasLabel := statusPathOffset > 0

	statusWidth := font.RenderText(f, nextTextOrigin, status, scratch)

	var statusRectWidth, labelRectWidth uint32
	if hasLabel {
		rectMargin := uint32(sideMargin + middleMargin/2)
		statusRectWidth = statusWidth + rectMargin
		labelRectWidth = labelWidth + rectMargin
	} else {
		statusRectWidth = statusWidth + 2*sideMargin
	}

	viewboxSize := font.Point{
		X: statusRectWidth + labelRectWidth,
		Y: viewboxHeight,
	}

	imageSize := font.Point{
		X: uint32(float32(viewboxSize.X) / viewboxScale),
		Y: uint32(float32(viewboxSize.Y) / viewboxScale),
	}

	statusTextPath := scratch.Bytes()
	var labelTextPath []byte
	if hasLabel {
		labelTextPath = statusTextPath[:statusPathOffset]
		statusTextPath = statusTextPath[statusPathOffset:]
	}

	svg := startSVG(w)

	svg.AttrUint("width", imageSize.X)
	svg.AttrUint("height", imageSize.Y)
	svg.Attr("viewBox", fmt.Sprintf("0 0 %d %d", viewboxSize.X, viewboxSize.Y))
	svg.Attr("xmlns", "http://www.w3.org/2000/svg")

	svg.Open("defs")

	svg.Open("path")
	svg.Attr("id", statusPathID)
	svg.AttrBytes("d", statusTextPath)
	svg.CloseInline()

	if labelTextPath != nil {
		svg.Open("path")
		svg.Attr("id", labelPathID)
		svg.AttrBytes("d", labelTextPath)
		svg.CloseInline()
	}

	svg.Close("defs")

	writeChrome(svg, style, viewboxSize, labelRectWidth, statusRectWidth, hasLabel)

	shadowOffset := style.TextShadowOffset * viewboxScaleUnit

	if label != "" {
		textColor := style.TextColor
		if style.LabelTextColor != nil {
			textColor = *style.LabelTextColor
		}
		writeTextRef(svg, textColor, labelPathID, style, shadowOffset)
	}

	writeTextRef(svg, style.TextColor, statusPathID, style, shadowOffset)

	return svg.Finish()
}

// writeChrome emits the parts shared by both render modes: the gradient
// definition, the rounding mask and the background rects.
func writeChrome(svg *svgWriter, style *Style, viewboxSize font.Point, labelRectWidth, statusRectWidth uint32, hasLabel bool) {
	requiresMask := style.BorderRadius > 0

	if g := style.Gradient; g != nil {
		svg.Open("linearGradient")
		svg.Attr("id", gradientID)
		svg.Attr("x2", "0")
		svg.Attr("y2", "100%")
		svg.Open("stop")
		svg.Attr("offset", "0")
		svg.Attr("stop-opacity", g.Opacity.String())
		svg.Attr("stop-color", g.Start.String())
		svg.CloseInline()
		svg.Open("stop")
		svg.Attr("offset", "1")
		svg.Attr("stop-opacity", g.Opacity.String())
		if g.End != nil {
			svg.Attr("stop-color", g.End.String())
		}
		svg.CloseInline()
		svg.Close("linearGradient")
		requiresMask = true
	}

	if requiresMask {
		svg.Open("mask")
		svg.Attr("id", maskID)
		svg.Open("rect")
		svg.AttrUint("width", viewboxSize.X)
		svg.AttrUint("height", viewboxSize.Y)
		svg.Attr("fill", "#fff")
		if style.BorderRadius > 0 {
			svg.AttrUint("rx", style.BorderRadius*10)
		}
		svg.CloseInline()
		svg.Close("mask")
		svg.Open("g")
		svg.Attr("mask", "url(#"+maskID+")")
	}

	if hasLabel {
		labelFill := ""
		if style.LabelBackground != nil {
			labelFill = style.LabelBackground.String()
		}
		writeRect(svg, font.Point{}, font.Point{X: labelRectWidth, Y: viewboxSize.Y}, labelFill)
	}

	writeRect(svg, font.Point{X: labelRectWidth}, font.Point{X: statusRectWidth, Y: viewboxSize.Y}, style.Background.String())

	if style.Gradient != nil {
		writeRect(svg, font.Point{}, viewboxSize, "url(#"+gradientID+")")
	}

	if requiresMask {
		svg.Close("g")
	}
}

// writeRect emits a rectangle as a path, the most compact form for
// axis-aligned boxes. An empty fill leaves the fill attribute off.
func writeRect(svg *svgWriter, origin, size font.Point, fill string) {
	svg.Open("path")
	svg.Attr("d", fmt.Sprintf("M%d %dh%dv%dH%dz", origin.X, origin.Y, size.X, size.Y, origin.X))
	if fill != "" {
		svg.Attr("fill", fill)
	}
	svg.CloseInline()
}

// writeTextRef draws a rendered text path twice: a translated shadow copy
// first, then the solid text above it.
func writeTextRef(svg *svgWriter, textColor Color, pathID string, style *Style, shadowOffset uint32) {
	offset := strconv.FormatUint(uint64(shadowOffset), 10)

	svg.Open("use")
	svg.Attr("href", "#"+pathID)
	svg.Attr("fill", style.TextShadowColor.String())
	svg.Attr("opacity", style.TextShadowOpacity.String())
	svg.Attr("transform", "translate("+offset+","+offset+")")
	svg.CloseInline()

	svg.Open("use")
	svg.Attr("href", "#"+pathID)
	svg.Attr("fill", textColor.String())
	svg.CloseInline()
}
