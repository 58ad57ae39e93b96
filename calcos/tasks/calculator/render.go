package calculator

import (
	"image/color"

	"bluecalc/calcos/calc"
	"bluecalc/calcos/gfx"
	"bluecalc/calcos/theme"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

var (
	valueFonts = []tinyfont.Fonter{
		&freesans.Bold24pt7b,
		&freesans.Bold18pt7b,
		&freesans.Bold12pt7b,
		&freesans.Regular9pt7b,
	}
	labelFonts = []tinyfont.Fonter{
		&freesans.Bold18pt7b,
		&freesans.Bold12pt7b,
		&freesans.Regular9pt7b,
		&tinyfont.TomThumb,
	}
	exprFont tinyfont.Fonter = &freesans.Regular9pt7b
)

// view is everything render needs for one frame.
type view struct {
	theme      theme.Theme
	expression string
	value      string
	hover      int
	focus      int
	flash      int
}

type renderer struct {
	s      *gfx.Surface
	l      layout
	labelF tinyfont.Fonter

	bg color.RGBA

	// last is the frame on screen; render repaints only what differs from it.
	last  view
	drawn bool
}

func newRenderer(s *gfx.Surface) *renderer {
	w, h := s.Size()
	r := &renderer{s: s, l: newLayout(int(w), int(h))}
	cell := r.l.buttons[0]
	r.labelF = labelFonts[len(labelFonts)-1]
	for _, f := range labelFonts {
		if gfx.Ascent(f)*2 <= cell.H && gfx.TextWidth(f, "0")*2 <= cell.W {
			r.labelF = f
			break
		}
	}
	return r
}

func (r *renderer) render(v view) error {
	th := v.theme
	full := !r.drawn || th != r.last.theme
	if full {
		r.bg = th.Medium
		r.s.Clear(th.Medium)
	}
	if full || v.expression != r.last.expression || v.value != r.last.value {
		r.drawPanel(v)
	}
	for i := range keypad {
		fill := buttonColor(th, i, v)
		if full || fill != buttonColor(r.last.theme, i, r.last) {
			r.drawButton(i, fill, th.Text)
		}
	}
	r.last, r.drawn = v, true
	return r.s.Display()
}

// invalidate forces the next render to repaint the whole surface.
func (r *renderer) invalidate() { r.drawn = false }

func buttonColor(th theme.Theme, i int, v view) color.RGBA {
	switch {
	case i == v.flash:
		return th.Highlight
	case i == v.hover || i == v.focus:
		return th.Accent
	}
	switch keypad[i].kind {
	case kindOperator:
		return th.Dark
	case kindFunction:
		return th.Medium
	default:
		return th.Light
	}
}

func (r *renderer) drawPanel(v view) {
	th := v.theme
	p := r.l.panel
	r.s.FillRoundRect(p, r.l.radius, th.Light)

	inner := p.Inset(r.l.pad)
	if inner.Empty() {
		return
	}

	expr := gfx.TruncateLeft(exprFont, calc.PlainText(v.expression), inner.W)
	r.s.DrawTextRight(exprFont, inner, inner.Y+gfx.Ascent(exprFont), expr, th.Text)

	f := gfx.FitFont(valueFonts, v.value, inner.W)
	value := gfx.TruncateLeft(f, v.value, inner.W)
	r.s.DrawTextRight(f, inner, inner.Y+inner.H, value, th.Text)
}

func (r *renderer) drawButton(i int, fill, fg color.RGBA) {
	b := r.l.buttons[i]
	r.s.FillRoundRect(b, r.l.radius, fill)
	// Function keys match the background; outline them.
	if fill == r.bg {
		r.s.StrokeRect(b.Inset(r.l.radius/2), 1, fg)
	}
	if keypad[i].icon != iconNone {
		r.drawIcon(keypad[i].icon, b, fg)
		return
	}
	r.s.DrawTextCentered(r.labelF, b, keypad[i].label, fg)
}

// drawIcon strokes operator symbols the 7-bit fonts do not carry.
func (r *renderer) drawIcon(ic icon, b gfx.Rect, c color.RGBA) {
	cx, cy := b.Center()
	s := min(b.W, b.H) / 5
	if s < 3 {
		s = 3
	}
	t := max(2, s/4)
	dot := max(1, t)

	switch ic {
	case iconPlus:
		r.s.Line(cx-s, cy, cx+s, cy, t, c)
		r.s.Line(cx, cy-s, cx, cy+s, t, c)
	case iconMinus:
		r.s.Line(cx-s, cy, cx+s, cy, t, c)
	case iconTimes:
		d := s * 3 / 4
		r.s.Line(cx-d, cy-d, cx+d, cy+d, t, c)
		r.s.Line(cx-d, cy+d, cx+d, cy-d, t, c)
	case iconDivide:
		r.s.Line(cx-s, cy, cx+s, cy, t, c)
		r.s.FillCircle(cx, cy-s*2/3, dot, c)
		r.s.FillCircle(cx, cy+s*2/3, dot, c)
	case iconPlusMinus:
		h := s * 2 / 3
		up := cy - s/3
		r.s.Line(cx-h, up, cx+h, up, t, c)
		r.s.Line(cx, up-h, cx, up+h, t, c)
		r.s.Line(cx-h, cy+s, cx+h, cy+s, t, c)
	case iconSqrt:
		r.s.Line(cx-s, cy, cx-s/2, cy+s, t, c)
		r.s.Line(cx-s/2, cy+s, cx, cy-s, t, c)
		r.s.Line(cx, cy-s, cx+s, cy-s, t, c)
	}
}
