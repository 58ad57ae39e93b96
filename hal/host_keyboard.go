//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostSpecialKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyDelete, KeyDelete},
}

// poll translates the window's key state for this frame into events.
func (k *hostKeyboard) poll() {
	// Typed characters (digits, operators, space) arrive as runes.
	for _, r := range ebiten.AppendInputChars(nil) {
		k.inject(KeyEvent{Press: true, Rune: r})
	}

	for _, sk := range hostSpecialKeys {
		if inpututil.IsKeyJustPressed(sk.key) {
			k.inject(KeyEvent{Code: sk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(sk.key) {
			k.inject(KeyEvent{Code: sk.code, Press: false})
		}
	}
}

func (p *hostPointer) poll(width, height int) {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < width && y < height

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.emit(PointerEvent{X: x, Y: y, Button: PointerDown, Inside: inside})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.emit(PointerEvent{X: x, Y: y, Button: PointerUp, Inside: inside})
	case x != p.lastX || y != p.lastY || inside != p.inside:
		p.emit(PointerEvent{X: x, Y: y, Inside: inside})
	}
	p.lastX, p.lastY, p.inside = x, y, inside
}
