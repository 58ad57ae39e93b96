// Package gfx draws into an RGB565 hal.Framebuffer through the tinygo
// drivers.Displayer interface so tinyfont can render onto it.
package gfx

import (
	"image/color"

	"bluecalc/hal"

	"tinygo.org/x/drivers"
)

// Surface adapts a hal.Framebuffer to drivers.Displayer.
type Surface struct {
	fb  hal.Framebuffer
	dmg hal.Damage
}

var _ drivers.Displayer = (*Surface)(nil)

// NewSurface wraps fb. A nil or non-RGB565 framebuffer yields a surface that
// ignores every draw call.
func NewSurface(fb hal.Framebuffer) *Surface {
	return &Surface{fb: fb}
}

func (s *Surface) usable() []byte {
	if s == nil || s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return s.fb.Buffer()
}

func (s *Surface) Size() (x, y int16) {
	if s == nil || s.fb == nil {
		return 0, 0
	}
	return int16(s.fb.Width()), int16(s.fb.Height())
}

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	buf := s.usable()
	if buf == nil {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= s.fb.Width() || iy < 0 || iy >= s.fb.Height() {
		return
	}
	off := iy*s.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
	s.dmg.Add(ix, iy, ix+1, iy+1)
}

// Pixel reads back the colour at (x, y), quantised to RGB565.
func (s *Surface) Pixel(x, y int) (color.RGBA, bool) {
	buf := s.usable()
	if buf == nil || x < 0 || x >= s.fb.Width() || y < 0 || y >= s.fb.Height() {
		return color.RGBA{}, false
	}
	off := y*s.fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return color.RGBA{}, false
	}
	r, g, b := hal.RGB888(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, true
}

// Display presents the back buffer. A framebuffer that accepts damage is
// told the region drawn since the previous Display first.
func (s *Surface) Display() error {
	if s == nil || s.fb == nil {
		return nil
	}
	if sink, ok := s.fb.(hal.DamageSink); ok && !s.dmg.Empty() {
		sink.Damage(s.dmg)
	}
	s.dmg = hal.Damage{}
	return s.fb.Present()
}

func (s *Surface) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.RGBA) {
	if s.usable() == nil {
		return
	}
	s.fb.ClearRGB(c.R, c.G, c.B)
	s.dmg.Add(0, 0, s.fb.Width(), s.fb.Height())
}

func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	buf := s.usable()
	if buf == nil {
		return nil
	}

	w := s.fb.Width()
	h := s.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := s.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	s.dmg.Add(x0, y0, x1, y1)
	return nil
}

// FillRect is FillRectangle on a Rect.
func (s *Surface) FillRect(r Rect, c color.RGBA) {
	_ = s.FillRectangle(int16(r.X), int16(r.Y), int16(r.W), int16(r.H), c)
}

// FillRoundRect fills r with corners of the given radius cut away.
func (s *Surface) FillRoundRect(r Rect, radius int, c color.RGBA) {
	if radius*2 > r.W {
		radius = r.W / 2
	}
	if radius*2 > r.H {
		radius = r.H / 2
	}
	if radius <= 0 {
		s.FillRect(r, c)
		return
	}
	s.FillRect(Rect{X: r.X, Y: r.Y + radius, W: r.W, H: r.H - 2*radius}, c)
	for dy := 0; dy < radius; dy++ {
		// Inset of the row dy pixels in from the top or bottom edge.
		yy := radius - dy
		inset := radius - isqrt(radius*radius-yy*yy)
		row := Rect{X: r.X + inset, W: r.W - 2*inset, H: 1}
		row.Y = r.Y + dy
		s.FillRect(row, c)
		row.Y = r.Y + r.H - 1 - dy
		s.FillRect(row, c)
	}
}

// StrokeRect draws a border of the given thickness inside r.
func (s *Surface) StrokeRect(r Rect, thickness int, c color.RGBA) {
	if thickness <= 0 {
		return
	}
	s.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, c)
	s.FillRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, c)
	s.FillRect(Rect{X: r.X, Y: r.Y, W: thickness, H: r.H}, c)
	s.FillRect(Rect{X: r.X + r.W - thickness, Y: r.Y, W: thickness, H: r.H}, c)
}

// Line draws a line of the given thickness from (x0, y0) to (x1, y1).
func (s *Surface) Line(x0, y0, x1, y1, thickness int, c color.RGBA) {
	if thickness < 1 {
		thickness = 1
	}
	half := thickness / 2
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.FillRect(Rect{X: x0 - half, Y: y0 - half, W: thickness, H: thickness}, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills a disc centred on (cx, cy).
func (s *Surface) FillCircle(cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		half := isqrt(radius*radius - dy*dy)
		s.FillRect(Rect{X: cx - half, Y: cy + dy, W: 2*half + 1, H: 1}, c)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}
