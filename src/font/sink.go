package font

import (
	"bytes"
	"math"
	"strconv"
)

// float32Epsilon is the tolerance under which a rounded coordinate is
// written as a bare integer instead of a decimal.
const float32Epsilon = 0x1p-23

// pathSink appends SVG path commands to a buffer. Outline coordinates
// arrive in font design units with y pointing up; the sink emits deltas
// from the previous point, flips y to SVG's downward axis and scales into
// viewbox units.
type pathSink struct {
	scale        float32
	last         struct{ x, y float32 }
	path         *bytes.Buffer
	precision    uint8
	precisionMod float32
	num          [32]byte
}

func newPathSink(scale float32, precision uint8, path *bytes.Buffer) pathSink {
	mod := float32(1)
	if precision != 0 {
		mod = float32(precision) * 10
	}
	return pathSink{scale: scale, precision: precision, precisionMod: mod, path: path}
}

func (s *pathSink) MoveTo(x, y float32) {
	s.path.WriteByte('m')
	s.writeX(x, true)
	s.writeY(y)
	s.setLast(x, y)
}

func (s *pathSink) LineTo(x, y float32) {
	s.path.WriteByte('l')
	s.writeX(x, true)
	s.writeY(y)
	s.setLast(x, y)
}

func (s *pathSink) QuadTo(x1, y1, x, y float32) {
	s.path.WriteByte('q')
	s.writeX(x1, true)
	s.writeY(y1)
	s.writeX(x, false)
	s.writeY(y)
	s.setLast(x, y)
}

func (s *pathSink) CubeTo(x1, y1, x2, y2, x, y float32) {
	s.path.WriteByte('c')
	s.writeX(x1, true)
	s.writeY(y1)
	s.writeX(x2, false)
	s.writeY(y2)
	s.writeX(x, false)
	s.writeY(y)
	s.setLast(x, y)
}

// ClosePath ends the current contour. The reference point is left alone:
// outlines return to their start point before closing, so it already
// matches the contour origin.
func (s *pathSink) ClosePath() {
	s.path.WriteByte('Z')
}

// moveToAbs starts a glyph run with an absolute move in viewbox units.
func (s *pathSink) moveToAbs(x, y float32) {
	s.path.WriteByte('M')
	s.writeFloat(x, true)
	s.writeFloat(y, false)
}

func (s *pathSink) setLast(x, y float32) {
	s.last.x = x
	s.last.y = y
}

func (s *pathSink) writeX(x float32, first bool) {
	s.writeScaled(x-s.last.x, first)
}

func (s *pathSink) writeY(y float32) {
	s.writeScaled(s.last.y-y, false)
}

func (s *pathSink) writeScaled(v float32, first bool) {
	s.writeFloat(v*s.scale, first)
}

// writeFloat rounds v to the sink precision and appends it, preceded by a
// space unless it is the first operand of a command or its own minus sign
// already separates it.
func (s *pathSink) writeFloat(v float32, first bool) {
	v = float32(math.Round(float64(v*s.precisionMod))) / s.precisionMod
	if !first && v >= 0 {
		s.path.WriteByte(' ')
	}
	i := int32(v)
	d := v - float32(i)
	if d < 0 {
		d = -d
	}
	if s.precision == 0 || d < float32Epsilon {
		s.path.Write(strconv.AppendInt(s.num[:0], int64(i), 10))
	} else {
		s.path.Write(strconv.AppendFloat(s.num[:0], float64(v), 'f', -1, 32))
	}
}
