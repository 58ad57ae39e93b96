package kernel

import (
	"fmt"
	"sync"
)

const (
	maxTasks     = 16
	maxEndpoints = 16
	mailboxSlots = 16
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies an IPC destination.
type Endpoint uint8

// Capability grants access to an IPC endpoint.
//
// It is opaque by construction (no exported fields) and may be transferred via IPC.
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) valid() bool {
	return c.rights != 0
}

func (c Capability) Valid() bool { return c.valid() }

func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	if !c.valid() {
		return Capability{}
	}
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// Message is a fixed-size IPC envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
	Cap  Capability
}

// Payload returns the valid part of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 128

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrInvalidFromCap
	SendErrInvalidToCap
	SendErrFromNoSendRight
	SendErrToNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrInvalidFromCap:
		return "invalid from capability"
	case SendErrInvalidToCap:
		return "invalid to capability"
	case SendErrFromNoSendRight:
		return "from capability has no send right"
	case SendErrToNoSendRight:
		return "to capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a long-running unit of execution.
//
// Run owns its goroutine and returns when the task is done.
type Task interface {
	Run(*Context)
}

type endpointState struct {
	ch chan Message
}

// Kernel routes messages between tasks and broadcasts ticks.
type Kernel struct {
	mu sync.Mutex

	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint

	taskCount TaskID
	wg        sync.WaitGroup

	tick     uint64
	tickCond *sync.Cond

	onPanic   func(PanicInfo)
	panicOnce sync.Once
	panicked  bool
}

// PanicInfo describes the first task panic a kernel recovered.
type PanicInfo struct {
	TaskID TaskID
	Task   string // dynamic type of the task, e.g. "*calculator.Task"
	Tick   uint64
	Value  any
	Stack  []byte
}

// New creates a kernel instance.
func New() *Kernel {
	k := &Kernel{}
	k.tickCond = sync.NewCond(&k.mu)
	return k
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.endpointCount >= maxEndpoints {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	k.endpoints[ep].ch = make(chan Message, mailboxSlots)
	return Capability{ep: ep, rights: rights}
}

// SetPanicHandler installs fn to receive the first task panic. fn runs on
// the panicking task's goroutine and may block to halt it.
func (k *Kernel) SetPanicHandler(fn func(PanicInfo)) {
	k.mu.Lock()
	k.onPanic = fn
	k.mu.Unlock()
}

// Panicked reports whether any task has panicked.
func (k *Kernel) Panicked() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.panicked
}

// AddTask starts t in its own goroutine and returns its ID.
//
// A panic inside the task is recovered and reported through the panic
// handler; the kernel keeps running the other tasks.
func (k *Kernel) AddTask(t Task) (TaskID, bool) {
	k.mu.Lock()
	if k.taskCount >= maxTasks || t == nil {
		k.mu.Unlock()
		return 0, false
	}
	id := k.taskCount
	k.taskCount++
	k.mu.Unlock()

	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				k.taskPanicked(PanicInfo{TaskID: id, Task: fmt.Sprintf("%T", t), Value: r})
			}
		}()
		t.Run(&Context{k: k, taskID: id})
	}()
	return id, true
}

// taskPanicked records info and hands the first panic to the handler.
// Later panics are dropped.
func (k *Kernel) taskPanicked(info PanicInfo) {
	k.panicOnce.Do(func() {
		info.Stack = captureStack()
		k.mu.Lock()
		k.panicked = true
		info.Tick = k.tick
		fn := k.onPanic
		k.mu.Unlock()
		if fn != nil {
			fn(info)
		}
	})
}

// Wait blocks until every task has returned.
func (k *Kernel) Wait() {
	k.wg.Wait()
}

// TickTo advances the kernel tick to seq and wakes tick waiters.
//
// Ticks never move backwards.
func (k *Kernel) TickTo(seq uint64) {
	k.mu.Lock()
	if seq > k.tick {
		k.tick = seq
		k.tickCond.Broadcast()
	}
	k.mu.Unlock()
}

// Tick advances the kernel tick by one.
func (k *Kernel) Tick() {
	k.mu.Lock()
	k.tick++
	k.tickCond.Broadcast()
	k.mu.Unlock()
}

func (k *Kernel) nowTick() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.tick
}

func (k *Kernel) waitTick(after uint64) uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	for k.tick <= after {
		k.tickCond.Wait()
	}
	return k.tick
}

func (k *Kernel) endpointChan(ep Endpoint) chan Message {
	k.mu.Lock()
	defer k.mu.Unlock()
	if ep >= k.endpointCount {
		return nil
	}
	return k.endpoints[ep].ch
}

func (k *Kernel) send(from Endpoint, to Endpoint, kind uint16, payload []byte, xfer Capability) SendResult {
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}
	ch := k.endpointChan(to)
	if ch == nil {
		return SendErrNoEndpoint
	}

	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)
	msg.Cap = xfer

	select {
	case ch <- msg:
		return SendOK
	default:
		return SendErrQueueFull
	}
}
