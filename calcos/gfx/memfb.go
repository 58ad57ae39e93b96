package gfx

import (
	"sync"
	"sync/atomic"

	"bluecalc/hal"
)

// MemFramebuffer is a plain in-memory RGB565 framebuffer.
//
// It backs surfaces on boards without a panel and in tests.
type MemFramebuffer struct {
	width, height int
	buf           []byte
	presents      atomic.Int32

	mu      sync.Mutex
	pending hal.Damage
	last    hal.Damage
}

var (
	_ hal.Framebuffer = (*MemFramebuffer)(nil)
	_ hal.DamageSink  = (*MemFramebuffer)(nil)
)

func NewMemFramebuffer(width, height int) *MemFramebuffer {
	return &MemFramebuffer{width: width, height: height, buf: make([]byte, width*height*2)}
}

func (f *MemFramebuffer) Width() int              { return f.width }
func (f *MemFramebuffer) Height() int             { return f.height }
func (f *MemFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int        { return f.width * 2 }
func (f *MemFramebuffer) Buffer() []byte          { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(pixel)
		f.buf[i+1] = byte(pixel >> 8)
	}
}

func (f *MemFramebuffer) Present() error {
	f.mu.Lock()
	f.last = f.pending
	if f.last.Empty() {
		f.last = hal.Damage{X1: f.width, Y1: f.height}
	}
	f.pending = hal.Damage{}
	f.mu.Unlock()
	f.presents.Add(1)
	return nil
}

// Damage records the region reported for the next Present.
func (f *MemFramebuffer) Damage(d hal.Damage) {
	f.mu.Lock()
	f.pending.Add(d.X0, d.Y0, d.X1, d.Y1)
	f.pending = f.pending.Clip(f.width, f.height)
	f.mu.Unlock()
}

// LastDamage returns the region reported before the latest Present, or the
// whole frame when none was reported.
func (f *MemFramebuffer) LastDamage() hal.Damage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Presents counts Present calls.
func (f *MemFramebuffer) Presents() int { return int(f.presents.Load()) }
