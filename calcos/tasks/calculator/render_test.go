package calculator

import (
	"image/color"
	"testing"

	"bluecalc/calcos/calc"
	"bluecalc/calcos/gfx"
	"bluecalc/calcos/theme"
	"bluecalc/hal"
)

func quantise(c color.RGBA) color.RGBA {
	s := gfx.NewSurface(gfx.NewMemFramebuffer(1, 1))
	s.SetPixel(0, 0, c)
	got, _ := s.Pixel(0, 0)
	return got
}

// fillAt samples a button just inside its top edge, clear of label ink.
func fillAt(t *testing.T, s *gfx.Surface, r *renderer, i int) color.RGBA {
	t.Helper()
	b := r.l.buttons[i]
	c, ok := s.Pixel(b.X+b.W/2, b.Y+2)
	if !ok {
		t.Fatalf("button %d sample out of range", i)
	}
	return c
}

func TestRenderColoursByKind(t *testing.T) {
	fb := gfx.NewMemFramebuffer(hal.HostWidth, hal.HostHeight)
	s := gfx.NewSurface(fb)
	r := newRenderer(s)
	th := theme.Default()

	if err := r.render(view{theme: th, value: "0", hover: -1, focus: -1, flash: -1}); err != nil {
		t.Fatal(err)
	}
	if fb.Presents() != 1 {
		t.Fatalf("Presents() = %d, want 1", fb.Presents())
	}

	tests := []struct {
		label string
		want  color.RGBA
	}{
		{"7", th.Light},
		{"0", th.Light},
		{".", th.Light},
		{"C", th.Medium},
		{"√", th.Medium},
		{"÷", th.Dark},
		{"+", th.Dark},
		{"=", th.Dark},
	}
	for _, tt := range tests {
		i := -1
		for j, b := range keypad {
			if b.label == tt.label {
				i = j
			}
		}
		if got := fillAt(t, s, r, i); got != quantise(tt.want) {
			t.Fatalf("button %q fill = %v, want %v", tt.label, got, quantise(tt.want))
		}
	}

	x, y := r.l.panel.Center()
	if got, _ := s.Pixel(r.l.panel.X+2, y); got != quantise(th.Light) {
		t.Fatalf("panel fill = %v at (%d,%d)", got, x, y)
	}
}

func TestRenderHoverAndFlash(t *testing.T) {
	s := gfx.NewSurface(gfx.NewMemFramebuffer(hal.HostWidth, hal.HostHeight))
	r := newRenderer(s)
	th := theme.Default()

	if err := r.render(view{theme: th, value: "0", hover: 4, focus: 9, flash: 19}); err != nil {
		t.Fatal(err)
	}
	if got := fillAt(t, s, r, 4); got != quantise(th.Accent) {
		t.Fatalf("hovered fill = %v, want accent", got)
	}
	if got := fillAt(t, s, r, 9); got != quantise(th.Accent) {
		t.Fatalf("focused fill = %v, want accent", got)
	}
	if got := fillAt(t, s, r, 19); got != quantise(th.Highlight) {
		t.Fatalf("flashed fill = %v, want highlight", got)
	}
}

func TestRenderValueInk(t *testing.T) {
	s := gfx.NewSurface(gfx.NewMemFramebuffer(hal.HostWidth, hal.HostHeight))
	r := newRenderer(s)
	th := theme.Default()
	text := quantise(th.Text)

	count := func() int {
		n := 0
		p := r.l.panel
		for y := p.Y; y < p.Y+p.H; y++ {
			for x := p.X; x < p.X+p.W; x++ {
				if c, _ := s.Pixel(x, y); c == text {
					n++
				}
			}
		}
		return n
	}

	_ = r.render(view{theme: th, value: "", hover: -1, focus: -1, flash: -1})
	if n := count(); n != 0 {
		t.Fatalf("empty panel has %d text pixels", n)
	}
	_ = r.render(view{theme: th, expression: "3 + 4 =", value: "7", hover: -1, focus: -1, flash: -1})
	if count() == 0 {
		t.Fatal("expected value ink in the panel")
	}
	// A long value shrinks and elides instead of spilling past the panel.
	_ = r.render(view{theme: th, value: "-1.2345678901234567e+300", hover: -1, focus: -1, flash: -1})
	for y := r.l.panel.Y; y < r.l.panel.Y+r.l.panel.H; y++ {
		if c, _ := s.Pixel(0, y); c == text {
			t.Fatal("value ink left of the panel")
		}
	}
}

func TestExpressionTextHasGlyphs(t *testing.T) {
	for _, keys := range []string{"3+", "3-", "3*", "3/", "3+4=", "9-2=", "6*7=", "1/4=", "3+4n="} {
		m := calc.New()
		if err := m.Run(calc.ParseKeys(keys)...); err != nil {
			t.Fatalf("Run(%q): %v", keys, err)
		}
		text := calc.PlainText(m.Expression())
		if text == "" {
			t.Fatalf("Run(%q): empty expression", keys)
		}
		for _, r := range text {
			if r == ' ' {
				continue
			}
			if exprFont.GetGlyph(r).Info().Width == 0 {
				t.Fatalf("expression %q: rune %q has no glyph in the expression font", text, r)
			}
		}
	}
}

func TestRenderRepaintsOnlyChanges(t *testing.T) {
	fb := gfx.NewMemFramebuffer(hal.HostWidth, hal.HostHeight)
	s := gfx.NewSurface(fb)
	r := newRenderer(s)
	th := theme.Default()
	v := view{theme: th, value: "0", hover: -1, focus: -1, flash: -1}

	if err := r.render(v); err != nil {
		t.Fatal(err)
	}
	if got, want := fb.LastDamage(), (hal.Damage{X1: hal.HostWidth, Y1: hal.HostHeight}); got != want {
		t.Fatalf("first frame damage = %+v, want the whole frame", got)
	}

	v.hover = 6
	_ = r.render(v)
	b := r.l.buttons[6]
	want := hal.Damage{X0: b.X, Y0: b.Y, X1: b.X + b.W, Y1: b.Y + b.H}
	if got := fb.LastDamage(); got != want {
		t.Fatalf("hover damage = %+v, want button %+v", got, want)
	}
	if got := fillAt(t, s, r, 6); got != quantise(th.Accent) {
		t.Fatalf("hovered fill = %v, want accent", got)
	}

	v.value = "42"
	_ = r.render(v)
	p := r.l.panel
	if got := fb.LastDamage(); got != (hal.Damage{X0: p.X, Y0: p.Y, X1: p.X + p.W, Y1: p.Y + p.H}) {
		t.Fatalf("value damage = %+v, want panel %+v", got, p)
	}

	th.Light = theme.Default().Dark
	v.theme = th
	_ = r.render(v)
	if got := fb.LastDamage(); got != (hal.Damage{X1: hal.HostWidth, Y1: hal.HostHeight}) {
		t.Fatalf("theme change damage = %+v, want the whole frame", got)
	}
}
