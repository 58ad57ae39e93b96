// Package input turns HAL keyboard and pointer events into IPC messages for
// the calculator task.
package input

import (
	"bluecalc/calcos/kernel"
	"bluecalc/calcos/proto"
	"bluecalc/hal"
)

// maxPendingPointer bounds the pointer backlog kept while the consumer lags.
const maxPendingPointer = 32

type pointerMsg struct {
	action proto.PointerAction
	x, y   int16
}

type Service struct {
	in     hal.Input
	outCap kernel.Capability

	keys    <-chan hal.KeyEvent
	ptrs    <-chan hal.PointerEvent
	pending []byte
	ptrQ    []pointerMsg

	heldCode hal.KeyCode
	heldData []byte

	nextRepeatTick uint64
}

// New sends MsgKeyInput and MsgPointer messages to outCap.
func New(in hal.Input, outCap kernel.Capability) *Service {
	return &Service{in: in, outCap: outCap}
}

func (s *Service) Run(ctx *kernel.Context) {
	if ctx == nil || s.in == nil {
		return
	}
	if kbd := s.in.Keyboard(); kbd != nil {
		s.keys = kbd.Events()
	}
	if ptr := s.in.Pointer(); ptr != nil {
		s.ptrs = ptr.Events()
	}
	if s.keys == nil && s.ptrs == nil {
		return
	}

	done := make(chan struct{})
	defer close(done)
	tickCh := ctx.TickChan(done)

	for {
		select {
		case ev, ok := <-s.keys:
			if !ok {
				s.keys = nil
				if s.ptrs == nil {
					return
				}
				continue
			}
			s.handleKeyEvent(ctx, ev)
		case ev, ok := <-s.ptrs:
			if !ok {
				s.ptrs = nil
				if s.keys == nil {
					return
				}
				continue
			}
			s.handlePointerEvent(ev)
			s.flush(ctx)
		case tick := <-tickCh:
			s.handleRepeat(tick)
			s.flush(ctx)
		}
	}
}

func (s *Service) handleKeyEvent(ctx *kernel.Context, ev hal.KeyEvent) {
	if !ev.Press {
		if s.heldData != nil && ev.Code == s.heldCode {
			s.heldData = nil
			s.nextRepeatTick = 0
		}
		return
	}

	data := vt100FromKey(ev)
	if len(data) > 0 {
		s.pending = append(s.pending, data...)
		s.flush(ctx)
	}

	if !repeatableKey(ev, data) {
		return
	}
	s.heldCode = ev.Code
	s.heldData = append(s.heldData[:0], data...)
	s.nextRepeatTick = ctx.NowTick() + repeatDelayTicks
}

func (s *Service) handleRepeat(tick uint64) {
	if s.heldData == nil || tick < s.nextRepeatTick {
		return
	}
	s.pending = append(s.pending, s.heldData...)
	s.nextRepeatTick = tick + repeatRateTicks
}

func (s *Service) handlePointerEvent(ev hal.PointerEvent) {
	m := pointerMsg{action: pointerAction(ev), x: int16(ev.X), y: int16(ev.Y)}

	// Consecutive moves collapse into the latest position.
	if n := len(s.ptrQ); n > 0 && m.action == proto.PointerMove && s.ptrQ[n-1].action == proto.PointerMove {
		s.ptrQ[n-1] = m
		return
	}
	if len(s.ptrQ) >= maxPendingPointer {
		s.ptrQ = s.ptrQ[1:]
	}
	s.ptrQ = append(s.ptrQ, m)
}

func pointerAction(ev hal.PointerEvent) proto.PointerAction {
	switch {
	case ev.Button == hal.PointerDown:
		return proto.PointerPress
	case ev.Button == hal.PointerUp:
		return proto.PointerRelease
	case !ev.Inside:
		return proto.PointerLeave
	default:
		return proto.PointerMove
	}
}

func (s *Service) flush(ctx *kernel.Context) {
	if !s.outCap.Valid() {
		s.pending = nil
		s.ptrQ = nil
		return
	}
	s.flushKeys(ctx)
	s.flushPointer(ctx)
}

func (s *Service) flushKeys(ctx *kernel.Context) {
	for len(s.pending) > 0 {
		chunk := s.pending
		if len(chunk) > kernel.MaxMessageBytes {
			chunk = chunk[:kernel.MaxMessageBytes]
		}

		res := ctx.SendToCapResult(s.outCap, uint16(proto.MsgKeyInput), proto.KeyInputPayload(chunk), kernel.Capability{})
		switch res {
		case kernel.SendOK:
			s.pending = s.pending[len(chunk):]
		case kernel.SendErrQueueFull:
			return
		default:
			s.pending = nil
		}
	}
}

func (s *Service) flushPointer(ctx *kernel.Context) {
	for len(s.ptrQ) > 0 {
		m := s.ptrQ[0]
		res := ctx.SendToCapResult(s.outCap, uint16(proto.MsgPointer), proto.PointerPayload(m.action, m.x, m.y), kernel.Capability{})
		switch res {
		case kernel.SendOK:
			s.ptrQ = s.ptrQ[1:]
		case kernel.SendErrQueueFull:
			return
		default:
			s.ptrQ = nil
		}
	}
}

const (
	// Ticks are 1ms on host and TinyGo.
	repeatDelayTicks = 350
	repeatRateTicks  = 60
)

func repeatableKey(ev hal.KeyEvent, data []byte) bool {
	if len(data) == 0 {
		return false
	}
	switch ev.Code {
	case hal.KeyUp, hal.KeyDown, hal.KeyLeft, hal.KeyRight:
		return true
	default:
		return false
	}
}

func vt100FromKey(ev hal.KeyEvent) []byte {
	if ev.Rune != 0 {
		return []byte(string(ev.Rune))
	}

	switch ev.Code {
	case hal.KeyEnter:
		return []byte{'\r'}
	case hal.KeyEscape:
		return []byte{0x1b}
	case hal.KeyBackspace:
		return []byte{0x7f}
	case hal.KeyTab:
		return []byte{'\t'}
	case hal.KeyUp:
		return []byte("\x1b[A")
	case hal.KeyDown:
		return []byte("\x1b[B")
	case hal.KeyRight:
		return []byte("\x1b[C")
	case hal.KeyLeft:
		return []byte("\x1b[D")
	case hal.KeyDelete:
		return []byte("\x1b[3~")
	default:
		return nil
	}
}
