// Package app wires the HAL to the kernel and starts the calculator's
// services and tasks.
package app

import (
	"bluecalc/calcos/kernel"
	"bluecalc/calcos/services/input"
	"bluecalc/calcos/services/logger"
	"bluecalc/calcos/tasks/calculator"
	"bluecalc/hal"
	"bluecalc/internal/buildinfo"
)

type system struct {
	k *kernel.Kernel
}

// Config selects optional platform features.
type Config struct {
	// ThemePath names a YAML or TOML palette file. Empty keeps the default.
	ThemePath string
	// WatchTheme reloads ThemePath when it changes on disk.
	WatchTheme bool
}

// New initializes and starts the OS with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the OS and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

// NewWithConfig starts the OS and returns the runner's step function. The
// step reports startup errors so the host runner can exit with them.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	_, err := newSystem(h, cfg)
	return func() error { return err }
}

func RunWithConfig(h hal.HAL, cfg Config) {
	_ = NewWithConfig(h, cfg)
	select {}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + buildinfo.Title())
	}

	k := kernel.New()
	installPanicHandler(k, h)

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(calculator.New(h.Display(), calcEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend), h.Readout()))
	if in := h.Input(); in != nil {
		k.AddTask(input.New(in, calcEP.Restrict(kernel.RightSend)))
	}

	err := addPlatformTasks(k, cfg, calcEP.Restrict(kernel.RightSend), logEP.Restrict(kernel.RightSend))

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}, err
}
