//go:build !tinygo

package hal

import "time"

// hostTime converts wall-clock time elapsed between runner steps into
// TickDuration ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.advance(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / TickDuration)
	if ticks == 0 {
		return
	}
	t.acc %= TickDuration
	t.advance(ticks)
}

// advance publishes only the newest sequence number; consumers treat ticks
// as a monotonic clock, not as individual events.
func (t *hostTime) advance(n uint64) {
	t.seq += n
	select {
	case t.ch <- t.seq:
	default:
		select {
		case <-t.ch:
		default:
		}
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
