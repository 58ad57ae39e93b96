//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// ILI9488 commands used by the calculator.
const (
	ili9488SleepOut   = 0x11
	ili9488InvertOn   = 0x21
	ili9488DisplayOn  = 0x29
	ili9488ColumnAddr = 0x2A
	ili9488PageAddr   = 0x2B
	ili9488MemWrite   = 0x2C
	ili9488MemAccess  = 0x36
	ili9488PixelFmt   = 0x3A
	ili9488FrameRate  = 0xB1
	ili9488DispFunc   = 0xB6
	ili9488Power1     = 0xC0
	ili9488Power2     = 0xC1
	ili9488VCOM       = 0xC5
)

type lcdCmd struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// ili9488Init brings the PicoCalc panel up in 16bpp, mirrored for the
// carrier board wiring with BGR subpixel order.
var ili9488Init = []lcdCmd{
	{cmd: ili9488Power1, data: []byte{0x17, 0x15}},
	{cmd: ili9488Power2, data: []byte{0x41}},
	{cmd: ili9488VCOM, data: []byte{0x00, 0x12, 0x80, 0x40}},
	{cmd: ili9488PixelFmt, data: []byte{0x55}},
	{cmd: ili9488FrameRate, data: []byte{0xA0, 0x11}},
	{cmd: ili9488DispFunc, data: []byte{0x02, 0x22, 0x27}},
	{cmd: ili9488InvertOn},
	{cmd: ili9488MemAccess, data: []byte{0x40 | 0x04 | 0x08}},
	{cmd: ili9488SleepOut, delay: 120 * time.Millisecond},
	{cmd: ili9488DisplayOn},
}

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("lcd: SPI1 unavailable")
	}
	if err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	}); err != nil {
		return nil, err
	}

	lcd := &ili9488{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
	}
	for _, p := range []machine.Pin{lcd.cs, lcd.dc, lcd.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	lcd.rst.Low()
	time.Sleep(64 * time.Millisecond)
	lcd.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, c := range ili9488Init {
		lcd.cmd(c.cmd, c.data...)
		if c.delay > 0 {
			time.Sleep(c.delay)
		}
	}
	return lcd, nil
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

// blit writes the region r of a little-endian RGB565 frame to the panel.
func (d *ili9488) blit(buf []byte, stride int, r Damage) error {
	if r.Empty() || len(buf) < (r.Y1-1)*stride+r.X1*2 {
		return errors.New("lcd: damage outside framebuffer")
	}

	x0, y0 := uint16(r.X0), uint16(r.Y0)
	x1, y1 := uint16(r.X1-1), uint16(r.Y1-1)
	d.cmd(ili9488ColumnAddr, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1))
	d.cmd(ili9488PageAddr, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
	d.cmd(ili9488MemWrite)

	d.cs.Low()
	d.dc.High()
	packRect(d.txBuf, buf, stride, r, func(b []byte) {
		d.spi.Tx(b, nil)
	})
	d.cs.High()
	return nil
}
