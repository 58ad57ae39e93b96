package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
)

// KeyEvent is a keyboard event.
//
// Printable keys carry Rune; special keys carry Code.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerButton reports the primary button transition of a PointerEvent.
type PointerButton uint8

const (
	PointerNone PointerButton = iota
	PointerDown
	PointerUp
)

// PointerEvent is a mouse or touch event in framebuffer coordinates.
//
// Inside is false once the pointer has left the framebuffer.
type PointerEvent struct {
	X, Y   int
	Button PointerButton
	Inside bool
}

// Pointer provides pointer events (optional).
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// Ticks are TickDuration apart on every backend.
type Time interface {
	Ticks() <-chan uint64
}

// Readout mirrors the calculator's two text fields to a text console.
//
// It is optional; hosts that only have a framebuffer return nil.
type Readout interface {
	Show(expression, value string)
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
	Readout() Readout
}

// TickDuration is the period of one Time tick.
const TickDuration = time.Millisecond
