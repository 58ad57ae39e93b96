//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"bluecalc/app"
	"bluecalc/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var win hal.WindowConfig
	var appCfg app.Config
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Keys, "keys", "", "Key script typed in headless mode, e.g. \"3+4=\".")
	flag.IntVar(&cfg.KeyEvery, "key-every", 2, "Ticks between scripted keys in headless mode.")
	flag.IntVar(&win.Scale, "scale", 1, "Window scale factor.")
	flag.StringVar(&appCfg.ThemePath, "theme", "", "Palette file (.yaml, .yml or .toml).")
	flag.BoolVar(&appCfg.WatchTheme, "watch-theme", false, "Reload the palette file when it changes.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, win); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
