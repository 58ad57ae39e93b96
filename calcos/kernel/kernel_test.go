package kernel

import (
	"testing"
	"time"
)

func TestCapabilityRestrict(t *testing.T) {
	k := New()
	c := k.NewEndpoint(RightSend | RightRecv)
	if !c.Valid() {
		t.Fatal("expected valid capability")
	}
	if r := c.Restrict(RightSend); !r.canSend() || r.canRecv() {
		t.Fatal("Restrict(RightSend) kept the wrong rights")
	}
	if r := c.Restrict(RightSend).Restrict(RightRecv); r.Valid() {
		t.Fatal("expected empty capability after disjoint restrict")
	}
	if r := (Capability{}).Restrict(RightSend); r.Valid() {
		t.Fatal("expected invalid capability to stay invalid")
	}
}

func TestEndpointLimit(t *testing.T) {
	k := New()
	for i := 0; i < maxEndpoints; i++ {
		if !k.NewEndpoint(RightSend).Valid() {
			t.Fatalf("endpoint %d: expected valid capability", i)
		}
	}
	if k.NewEndpoint(RightSend).Valid() {
		t.Fatal("expected invalid capability past the endpoint limit")
	}
}

func TestSendRecv(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.SendToCapResult(ep.Restrict(RightSend), 7, []byte("hello"), Capability{}); res != SendOK {
		t.Fatalf("expected SendOK, got %s", res)
	}
	msg, ok := ctx.TryRecv(ep.Restrict(RightRecv))
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.Kind != 7 || string(msg.Payload()) != "hello" {
		t.Fatalf("unexpected message kind=%d payload=%q", msg.Kind, msg.Payload())
	}
	if _, ok := ctx.TryRecv(ep.Restrict(RightRecv)); ok {
		t.Fatal("expected empty endpoint")
	}
}

func TestSendRightsAreChecked(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.SendToCapResult(ep.Restrict(RightRecv), 1, nil, Capability{}); res != SendErrToNoSendRight {
		t.Fatalf("expected SendErrToNoSendRight, got %s", res)
	}
	if res := ctx.SendToCapResult(Capability{}, 1, nil, Capability{}); res != SendErrInvalidToCap {
		t.Fatalf("expected SendErrInvalidToCap, got %s", res)
	}
	if _, ok := ctx.RecvChan(ep.Restrict(RightSend)); ok {
		t.Fatal("expected RecvChan to refuse a send-only capability")
	}
	big := make([]byte, MaxMessageBytes+1)
	if res := ctx.SendToCapResult(ep, 1, big, Capability{}); res != SendErrPayloadTooLarge {
		t.Fatalf("expected SendErrPayloadTooLarge, got %s", res)
	}
}

func TestMessagePayloadClampsLen(t *testing.T) {
	var msg Message
	msg.Len = MaxMessageBytes + 10
	if got := len(msg.Payload()); got != MaxMessageBytes {
		t.Fatalf("expected payload length %d, got %d", MaxMessageBytes, got)
	}
}

func TestSendToCapRetryZeroLimitDoesNotBlock(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}
	to := ep.Restrict(RightSend)

	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(to, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("expected SendOK filling queue, got %s", res)
		}
	}

	res := ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 0)
	if res != SendErrQueueFull {
		t.Fatalf("expected SendErrQueueFull, got %s", res)
	}
}

func TestSendToCapRetrySucceedsAfterDrain(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}
	to := ep.Restrict(RightSend)
	ch, ok := ctx.RecvChan(ep.Restrict(RightRecv))
	if !ok || ch == nil {
		t.Fatal("expected recv channel")
	}

	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(to, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("expected SendOK filling queue, got %s", res)
		}
	}

	resultCh := make(chan SendResult, 1)
	go func() {
		resultCh <- ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 1000)
	}()

	<-ch

	deadline := time.After(2 * time.Second)
	for {
		select {
		case res := <-resultCh:
			if res != SendOK {
				t.Fatalf("expected SendOK after drain, got %s", res)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for retry")
		default:
			k.Tick()
			time.Sleep(time.Millisecond)
		}
	}
}

func TestTickToIsMonotonic(t *testing.T) {
	k := New()
	k.TickTo(10)
	k.TickTo(5)
	if got := k.nowTick(); got != 10 {
		t.Fatalf("expected tick 10, got %d", got)
	}
	ctx := &Context{k: k}
	done := make(chan uint64, 1)
	go func() { done <- ctx.WaitTick(10) }()

	deadline := time.After(2 * time.Second)
	for seq := uint64(11); ; seq++ {
		select {
		case got := <-done:
			if got <= 10 {
				t.Fatalf("WaitTick returned %d, want > 10", got)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for tick")
		default:
			k.TickTo(seq)
			time.Sleep(time.Millisecond)
		}
	}
}

type funcTask func(*Context)

func (f funcTask) Run(ctx *Context) { f(ctx) }

func TestAddTaskDeliversMessages(t *testing.T) {
	k := New()
	in := k.NewEndpoint(RightSend | RightRecv)
	out := k.NewEndpoint(RightSend | RightRecv)

	_, ok := k.AddTask(funcTask(func(ctx *Context) {
		msg, ok := ctx.Recv(in.Restrict(RightRecv))
		if !ok {
			return
		}
		ctx.SendTo(out.Restrict(RightSend), msg.Kind+1, msg.Payload())
	}))
	if !ok {
		t.Fatal("AddTask failed")
	}

	ctx := &Context{k: k}
	if !ctx.SendTo(in.Restrict(RightSend), 41, []byte("ping")) {
		t.Fatal("send failed")
	}
	select {
	case msg := <-k.endpointChan(out.ep):
		if msg.Kind != 42 || string(msg.Payload()) != "ping" {
			t.Fatalf("unexpected reply kind=%d payload=%q", msg.Kind, msg.Payload())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reply")
	}
	k.Wait()
}

func TestTaskPanicIsRecovered(t *testing.T) {
	k := New()
	got := make(chan PanicInfo, 2)
	k.SetPanicHandler(func(info PanicInfo) { got <- info })
	k.TickTo(7)

	id, ok := k.AddTask(funcTask(func(*Context) { panic("boom") }))
	if !ok {
		t.Fatal("AddTask failed")
	}
	k.Wait()

	select {
	case info := <-got:
		if info.TaskID != id || info.Value != "boom" {
			t.Fatalf("unexpected panic info: task=%d value=%v", info.TaskID, info.Value)
		}
		if info.Task != "kernel.funcTask" {
			t.Fatalf("Task = %q, want kernel.funcTask", info.Task)
		}
		if info.Tick != 7 {
			t.Fatalf("Tick = %d, want 7", info.Tick)
		}
		if len(info.Stack) == 0 {
			t.Fatal("expected a stack trace")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("panic handler not called")
	}
	if !k.Panicked() {
		t.Fatal("expected Panicked")
	}

	// Only the first panic reaches the handler; other tasks keep running.
	k.AddTask(funcTask(func(*Context) { panic("again") }))
	done := make(chan struct{})
	k.AddTask(funcTask(func(*Context) { close(done) }))
	k.Wait()
	<-done
	select {
	case info := <-got:
		t.Fatalf("second panic reported: %v", info.Value)
	default:
	}
}

func TestPanicWithoutHandler(t *testing.T) {
	k := New()
	k.AddTask(funcTask(func(*Context) { panic("unhandled") }))
	k.Wait()
	if !k.Panicked() {
		t.Fatal("expected Panicked")
	}
	if New().Panicked() {
		t.Fatal("panic state leaked into a new kernel")
	}
}
