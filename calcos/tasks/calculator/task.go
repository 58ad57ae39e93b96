// Package calculator is the keypad UI task: it owns the arithmetic
// machine, draws the display and button grid, and turns key and pointer
// messages into calculator actions.
package calculator

import (
	"bluecalc/calcos/calc"
	logclient "bluecalc/calcos/client/logger"
	"bluecalc/calcos/gfx"
	"bluecalc/calcos/kernel"
	"bluecalc/calcos/proto"
	"bluecalc/calcos/theme"
	"bluecalc/hal"
)

// flashTicks is how long an activated button shows the highlight colour.
const flashTicks = 120

type Task struct {
	disp    hal.Display
	ep      kernel.Capability
	logCap  kernel.Capability
	readout hal.Readout

	m     *calc.Machine
	theme theme.Theme
	r     *renderer

	hover   int
	focus   int
	pressed int

	flash      int
	flashUntil uint64

	shownExpr  string
	shownValue string
	shown      bool

	inbuf []byte
	dirty bool
}

// New returns a calculator task reading messages from ep.
//
// readout may be nil.
func New(disp hal.Display, ep, logCap kernel.Capability, readout hal.Readout) *Task {
	return &Task{
		disp:    disp,
		ep:      ep,
		logCap:  logCap,
		readout: readout,
		m:       calc.New(),
		theme:   theme.Default(),
		hover:   -1,
		focus:   -1,
		pressed: -1,
		flash:   -1,
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}

	var fb hal.Framebuffer
	if t.disp != nil {
		fb = t.disp.Framebuffer()
	}
	if fb == nil {
		logclient.Log(ctx, t.logCap, "calc: no framebuffer, readout only")
	}
	t.r = newRenderer(gfx.NewSurface(fb))
	t.dirty = true
	t.flush(ctx)

	done := make(chan struct{})
	defer close(done)
	tickCh := ctx.TickChan(done)

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			t.handleMsg(ctx, msg)
		case now := <-tickCh:
			if t.flash >= 0 && now >= t.flashUntil {
				t.flash = -1
				t.dirty = true
			}
		}
		t.flush(ctx)
	}
}

func (t *Task) handleMsg(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgKeyInput:
		t.handleInput(ctx, msg.Payload())
	case proto.MsgPointer:
		action, x, y, ok := proto.DecodePointerPayload(msg.Payload())
		if !ok {
			return
		}
		t.handlePointer(ctx, action, int(x), int(y))
	case proto.MsgThemeSet:
		colors, ok := proto.DecodeThemePayload(msg.Payload())
		if !ok {
			logclient.Log(ctx, t.logCap, "calc: bad theme payload")
			return
		}
		th, ok := theme.FromColors(colors)
		if !ok {
			logclient.Logf(ctx, t.logCap, "calc: theme has %d colours", len(colors))
			return
		}
		t.theme = th
		t.dirty = true
	}
}

func (t *Task) handleInput(ctx *kernel.Context, b []byte) {
	t.inbuf = append(t.inbuf, b...)
	buf := t.inbuf

	for len(buf) > 0 {
		n, k, ok := nextKey(buf)
		if !ok {
			break
		}
		buf = buf[n:]
		t.handleKey(ctx, k)
	}
	t.inbuf = append(t.inbuf[:0], buf...)
}

func (t *Task) handleKey(ctx *kernel.Context, k key) {
	switch k.kind {
	case keyEsc:
		t.apply(ctx, calc.Clear)
	case keyEnter:
		t.apply(ctx, calc.Equals)
	case keyUp:
		t.setFocus(move(t.focus, 0, -1))
	case keyDown:
		t.setFocus(move(t.focus, 0, 1))
	case keyLeft:
		t.setFocus(move(t.focus, -1, 0))
	case keyRight:
		t.setFocus(move(t.focus, 1, 0))
	case keyRune:
		if k.r == ' ' {
			if t.focus >= 0 {
				t.activate(ctx, t.focus)
			}
			return
		}
		if a, ok := calc.ActionForRune(k.r); ok {
			t.apply(ctx, a)
		}
	}
}

func (t *Task) setFocus(i int) {
	if i != t.focus {
		t.focus = i
		t.dirty = true
	}
}

func (t *Task) setHover(i int) {
	if i != t.hover {
		t.hover = i
		t.dirty = true
	}
}

func (t *Task) handlePointer(ctx *kernel.Context, action proto.PointerAction, x, y int) {
	i := t.r.l.hit(x, y)
	switch action {
	case proto.PointerMove:
		t.setHover(i)
	case proto.PointerPress:
		t.setHover(i)
		t.pressed = i
	case proto.PointerRelease:
		t.setHover(i)
		if i >= 0 && i == t.pressed {
			t.activate(ctx, i)
		}
		t.pressed = -1
	case proto.PointerLeave:
		t.setHover(-1)
		t.pressed = -1
	}
}

func (t *Task) activate(ctx *kernel.Context, i int) {
	if i < 0 || i >= len(keypad) {
		return
	}
	t.apply(ctx, keypad[i].action)
}

func (t *Task) apply(ctx *kernel.Context, a calc.Action) {
	evaluates := a.Kind == calc.ActEquals && t.m.Mode() == calc.ModeOperatorPending
	err := t.m.Apply(a)
	switch {
	case err != nil:
		logclient.Logf(ctx, t.logCap, "calc: error action=%s err=%q", a, err)
	case evaluates:
		logclient.Logf(ctx, t.logCap, "calc: %s %s", t.m.Expression(), t.m.Display())
	}

	if i := buttonFor(a); i >= 0 {
		t.flash = i
		t.flashUntil = ctx.NowTick() + flashTicks
	}
	t.dirty = true
}

func (t *Task) flush(ctx *kernel.Context) {
	if !t.dirty {
		return
	}
	t.dirty = false

	expr, value := t.m.Expression(), t.m.Display()
	if err := t.r.render(t.view()); err != nil {
		logclient.Logf(ctx, t.logCap, "calc: present: %v", err)
		t.r.invalidate()
	}
	if t.readout != nil && (!t.shown || expr != t.shownExpr || value != t.shownValue) {
		t.readout.Show(expr, value)
		t.shownExpr, t.shownValue, t.shown = expr, value, true
	}
}

func (t *Task) view() view {
	return view{
		theme:      t.theme,
		expression: t.m.Expression(),
		value:      t.m.Display(),
		hover:      t.hover,
		focus:      t.focus,
		flash:      t.flash,
	}
}
