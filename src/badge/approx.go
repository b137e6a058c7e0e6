package badge

import (
	"fmt"
	"io"
	"math"

	"github.com/sofmeright/badgen/src/font"
)

// approxBaseline is the text baseline in viewbox units for the
// approximate mode, tuned for the 20px badge height.
const approxBaseline = 14 * viewboxScaleUnit

// WriteBadgeApprox renders a badge to w using measured glyph advances and
// <text> elements instead of glyph outlines. The result depends on the
// viewer having a compatible font but is a fraction of the size. Text is
// escaped rather than validated, so any string is accepted.
//
// Geometry matches WriteBadgeWith: the same margins, mask and gradient
// apply, with rect widths derived from m's measurements.
func WriteBadgeApprox(w io.Writer, style *Style, status, label string, m *font.Metrics) error {
	hasLabel := label != ""

	// Scale measured pixel widths into viewbox units at the badge line
	// height.
	scale := lineHeight / m.Size()

	statusWidth := uint32(math.Round(m.TextWidth(status) * scale))
	var labelWidth uint32
	if hasLabel {
		labelWidth = uint32(math.Round(m.TextWidth(label) * scale))
	}

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

	viewboxScale := float32(viewboxHeight) / float32(style.Height)
	imageSize := font.Point{
		X: uint32(float32(viewboxSize.X) / viewboxScale),
		Y: uint32(float32(viewboxSize.Y) / viewboxScale),
	}

	svg := startSVG(w)

	svg.AttrUint("width", imageSize.X)
	svg.AttrUint("height", imageSize.Y)
	svg.Attr("viewBox", fmt.Sprintf("0 0 %d %d", viewboxSize.X, viewboxSize.Y))
	svg.Attr("xmlns", "http://www.w3.org/2000/svg")

	writeChrome(svg, style, viewboxSize, labelRectWidth, statusRectWidth, hasLabel)

	family := fmt.Sprintf("'%s',Verdana,Geneva,sans-serif", m.Name())

	svg.Open("g")
	svg.Attr("fill", style.TextColor.String())
	svg.Attr("text-anchor", "middle")
	svg.Attr("font-family", escapeText(family))
	svg.AttrUint("font-size", lineHeight)

	if hasLabel {
		labelFill := ""
		if style.LabelTextColor != nil {
			labelFill = style.LabelTextColor.String()
		}
		writeApproxText(svg, label, labelRectWidth/2, style, labelFill)
	}

	writeApproxText(svg, status, labelRectWidth+statusRectWidth/2, style, "")

	svg.Close("g")

	return svg.Finish()
}

// writeApproxText emits a shadow copy and the solid text at x, centered by
// the enclosing group's text-anchor. A non-empty fill overrides the group
// fill on the solid copy.
func writeApproxText(svg *svgWriter, text string, x uint32, style *Style, fill string) {
	shadowOffset := style.TextShadowOffset * viewboxScaleUnit
	escaped := escapeText(text)

	svg.Open("text")
	svg.AttrUint("x", x+shadowOffset)
	svg.AttrUint("y", approxBaseline+shadowOffset)
	svg.Attr("fill", style.TextShadowColor.String())
	svg.Attr("fill-opacity", style.TextShadowOpacity.String())
	svg.Text(escaped)
	svg.Close("text")

	svg.Open("text")
	svg.AttrUint("x", x)
	svg.AttrUint("y", approxBaseline)
	if fill != "" {
		svg.Attr("fill", fill)
	}
	svg.Text(escaped)
	svg.Close("text")
}
