//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// Logs go to UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. A missing LCD or
// keyboard controller degrades to an offscreen framebuffer and a silent
// keyboard so the calculator still boots and logs.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	disp, err := newPicoCalcDisplay()
	if err != nil {
		disp = newPicoCalcDisplayStub()
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		kbd = &stubKeyboard{}
	}

	logger := &uartLogger{uart: uart}
	if err != nil {
		logger.WriteLineString("hal: lcd unavailable: " + err.Error())
	}
	return &picoCalcHAL{
		logger: logger,
		fb:     disp,
		kbd:    kbd,
		t:      newTinyGoTime(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }

// Readout returns nil: the LCD is the only display.
func (h *picoCalcHAL) Readout() Readout { return nil }

type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd    *ili9488
	damage Damage
}

func (f *picoCalcFramebuffer) Width() int          { return f.w }
func (f *picoCalcFramebuffer) Height() int         { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
	f.damage = Damage{X1: f.w, Y1: f.h}
}

// Damage narrows the next Present to the region d.
func (f *picoCalcFramebuffer) Damage(d Damage) {
	f.damage.Add(d.X0, d.Y0, d.X1, d.Y1)
}

// Present pushes the damaged region to the panel, or the whole frame when
// nothing was reported. It is a no-op on the offscreen stub.
func (f *picoCalcFramebuffer) Present() error {
	d := f.damage.Clip(f.w, f.h)
	f.damage = Damage{}
	if f.lcd == nil {
		return nil
	}
	if d.Empty() {
		d = Damage{X1: f.w, Y1: f.h}
	}
	return f.lcd.blit(f.buf, f.stride, d)
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}

	const w = 320
	const h = 320
	return &picoCalcFramebuffer{
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
		lcd:    lcd,
	}, nil
}

func newPicoCalcDisplayStub() *picoCalcFramebuffer {
	const w = 320
	const h = 320
	return &picoCalcFramebuffer{
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
	}
}

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(dev.ch)
		for {
			ev, ok := kbd.readEvent()
			if ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}
