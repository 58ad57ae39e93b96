package gfx

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// TextWidth returns the advance width of s in pixels.
func TextWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

// Ascent returns how far glyphs of f rise above the baseline, measured on
// the digit '0'.
func Ascent(f tinyfont.Fonter) int {
	g := f.GetGlyph('0')
	return -int(g.Info().YOffset)
}

// FitFont returns the first font in ladder that renders s within maxWidth,
// or the last (smallest) font when none fit.
func FitFont(ladder []tinyfont.Fonter, s string, maxWidth int) tinyfont.Fonter {
	if len(ladder) == 0 {
		return nil
	}
	for _, f := range ladder {
		if TextWidth(f, s) <= maxWidth {
			return f
		}
	}
	return ladder[len(ladder)-1]
}

// Ellipsis marks text cut by TruncateLeft. The bundled fonts are 7-bit.
const Ellipsis = "..."

// TruncateLeft drops leading runes until s fits maxWidth, marking the cut
// with Ellipsis.
func TruncateLeft(f tinyfont.Fonter, s string, maxWidth int) string {
	if TextWidth(f, s) <= maxWidth {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[1:]
		out := Ellipsis + string(r)
		if TextWidth(f, out) <= maxWidth {
			return out
		}
	}
	return ""
}

// DrawText writes s with its baseline at y.
func (s *Surface) DrawText(f tinyfont.Fonter, x, y int, text string, c color.RGBA) {
	if f == nil || text == "" {
		return
	}
	tinyfont.WriteLine(s, f, int16(x), int16(y), text, c)
}

// DrawTextRight right-aligns text against r's right edge, baseline at y.
func (s *Surface) DrawTextRight(f tinyfont.Fonter, r Rect, y int, text string, c color.RGBA) {
	s.DrawText(f, r.X+r.W-TextWidth(f, text), y, text, c)
}

// DrawTextCentered centres text in r using the digit ascent for vertical
// placement.
func (s *Surface) DrawTextCentered(f tinyfont.Fonter, r Rect, text string, c color.RGBA) {
	if f == nil {
		return
	}
	cx, cy := r.Center()
	x := cx - TextWidth(f, text)/2
	y := cy + Ascent(f)/2
	s.DrawText(f, x, y, text, c)
}
