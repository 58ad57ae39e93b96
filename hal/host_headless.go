//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// Keys is typed into the keyboard, one key every KeyEvery steps.
	// '\n' types Enter and 0x1b types Escape.
	Keys     string
	KeyEvery int
}

// RunHeadless runs the OS without opening a window.
//
// The calculator state is mirrored to stdout through a console readout.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	readout := newConsoleReadout(os.Stdout)
	defer readout.Close()
	return runHeadless(ctx, newHostHAL(readout), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.KeyEvery <= 0 {
		cfg.KeyEvery = 2
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The ticker loop owns stepping; the feeder types the key script paced
	// by the steps it observes.
	steps := make(chan uint64, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		defer close(steps)

		t := time.NewTicker(d)
		defer t.Stop()

		var tick uint64
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-t.C:
				h.t.step(1)
				if step != nil {
					if err := step(); err != nil {
						return err
					}
				}
				tick++
				select {
				case steps <- tick:
				default:
				}
				if cfg.Ticks > 0 && tick >= cfg.Ticks {
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		keys := []rune(cfg.Keys)
		var next uint64 = uint64(cfg.KeyEvery)
		for len(keys) > 0 {
			tick, ok := <-steps
			if !ok {
				return nil
			}
			if tick < next {
				continue
			}
			if !h.kbd.inject(keyEventForRune(keys[0])) {
				continue
			}
			keys = keys[1:]
			next = tick + uint64(cfg.KeyEvery)
		}
		return nil
	})

	return g.Wait()
}

func keyEventForRune(r rune) KeyEvent {
	switch r {
	case '\n', '\r':
		return KeyEvent{Code: KeyEnter, Press: true}
	case 0x1b:
		return KeyEvent{Code: KeyEscape, Press: true}
	case 0x7f, 0x08:
		return KeyEvent{Code: KeyBackspace, Press: true}
	default:
		return KeyEvent{Press: true, Rune: r}
	}
}
