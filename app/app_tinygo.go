//go:build tinygo

package app

import "bluecalc/calcos/kernel"

// addPlatformTasks is a no-op on boards: there is no filesystem to read a
// palette from, so the default theme stays.
func addPlatformTasks(k *kernel.Kernel, cfg Config, calcCap, logCap kernel.Capability) error {
	_, _, _, _ = k, cfg, calcCap, logCap
	return nil
}
