//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Host framebuffer size: a 350x500 portrait calculator window.
const (
	HostWidth  = 350
	HostHeight = 500
)

type hostHAL struct {
	logger  *hostLogger
	fb      *hostFramebuffer
	kbd     *hostKeyboard
	ptr     *hostPointer
	t       *hostTime
	readout Readout
}

// New returns a host HAL implementation without a readout.
func New() HAL {
	return newHostHAL(nil)
}

func newHostHAL(readout Readout) *hostHAL {
	return &hostHAL{
		logger:  &hostLogger{w: os.Stderr},
		fb:      newHostFramebuffer(HostWidth, HostHeight),
		kbd:     newHostKeyboard(),
		ptr:     newHostPointer(),
		t:       newHostTime(),
		readout: readout,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Readout() Readout { return h.readout }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostPointer struct {
	ch chan PointerEvent

	lastX, lastY int
	inside       bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// hostKeyboard is fed by the window's poll in window mode and by the
// scripted key player in headless mode.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// inject queues a key event as if it had been typed.
func (k *hostKeyboard) inject(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}
