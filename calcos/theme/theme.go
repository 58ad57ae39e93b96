// Package theme holds the calculator palette.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"bluecalc/calcos/proto"
)

// Theme assigns a colour to each role of the keypad UI.
type Theme struct {
	// Light paints the display panel and the digit keys.
	Light color.RGBA
	// Medium paints the background and the function keys (C ± % √).
	Medium color.RGBA
	// Dark paints the operator keys and "=".
	Dark color.RGBA
	// Text paints every label.
	Text color.RGBA
	// Accent paints the key under the pointer or keyboard focus.
	Accent color.RGBA
	// Highlight flashes on the key that was just activated.
	Highlight color.RGBA
}

// Default returns the vibrant sky to navy gradient palette.
func Default() Theme {
	return Theme{
		Light:     rgb(0x1E, 0x90, 0xFF),
		Medium:    rgb(0x41, 0x69, 0xE1),
		Dark:      rgb(0x00, 0x00, 0x80),
		Text:      rgb(0xFF, 0xFF, 0xFF),
		Accent:    rgb(0x87, 0xCE, 0xEB),
		Highlight: rgb(0x00, 0xBF, 0xFF),
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (t Theme) roles() []*color.RGBA {
	return []*color.RGBA{&t.Light, &t.Medium, &t.Dark, &t.Text, &t.Accent, &t.Highlight}
}

// Colors returns the palette in MsgThemeSet order.
func (t Theme) Colors() []proto.RGB {
	roles := t.roles()
	out := make([]proto.RGB, len(roles))
	for i, c := range roles {
		out[i] = proto.RGB{c.R, c.G, c.B}
	}
	return out
}

// FromColors rebuilds a theme from a MsgThemeSet palette.
func FromColors(colors []proto.RGB) (Theme, bool) {
	var t Theme
	roles := []*color.RGBA{&t.Light, &t.Medium, &t.Dark, &t.Text, &t.Accent, &t.Highlight}
	if len(colors) != len(roles) {
		return Theme{}, false
	}
	for i, c := range colors {
		*roles[i] = rgb(c[0], c[1], c[2])
	}
	return t, true
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("theme: bad colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("theme: bad colour %q: %w", s, err)
	}
	return rgb(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex formats c as "#RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
