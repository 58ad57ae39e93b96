//go:build !tinygo

package app

import (
	"fmt"

	"github.com/spf13/afero"

	"bluecalc/calcos/kernel"
	themesvc "bluecalc/calcos/services/theme"
	"bluecalc/calcos/theme"
)

// addPlatformTasks starts the theme service when a palette file is set.
func addPlatformTasks(k *kernel.Kernel, cfg Config, calcCap, logCap kernel.Capability) error {
	if cfg.ThemePath == "" {
		if cfg.WatchTheme {
			return fmt.Errorf("app: -watch-theme needs -theme")
		}
		return nil
	}
	if _, err := theme.FormatForPath(cfg.ThemePath); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if _, ok := k.AddTask(themesvc.New(afero.NewOsFs(), cfg.ThemePath, cfg.WatchTheme, calcCap, logCap)); !ok {
		return fmt.Errorf("app: theme service: task limit reached")
	}
	return nil
}
