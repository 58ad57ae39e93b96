package app

import (
	"fmt"
	"image/color"
	"strings"

	"bluecalc/calcos/gfx"
	"bluecalc/calcos/kernel"
	"bluecalc/hal"

	"tinygo.org/x/tinyfont"
)

var (
	panicBG = color.RGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xFF}
	panicFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// installPanicHandler logs the first task panic and paints it over the
// calculator, then parks the panicking task.
func installPanicHandler(k *kernel.Kernel, h hal.HAL) {
	k.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		if disp := h.Display(); disp != nil {
			drawPanic(gfx.NewSurface(disp.Framebuffer()), lines)
		}
		select {}
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"calc panic:",
		fmt.Sprintf("task: %d %s", info.TaskID, info.Task),
		fmt.Sprintf("tick: %d", info.Tick),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}
	return lines
}

// drawPanic prints lines in TomThumb, wrapping at the surface width and
// stopping at the bottom edge.
func drawPanic(s *gfx.Surface, lines []string) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	s.Clear(panicBG)

	font := &tinyfont.TomThumb
	lineH := int(font.GetYAdvance())
	if lineH <= 0 {
		lineH = 6
	}
	const margin = 2
	maxW := int(w) - 2*margin

	y := margin + lineH
	for _, line := range lines {
		for len(line) > 0 {
			if y > int(h) {
				_ = s.Display()
				return
			}
			chunk, rest := fitPrefix(font, line, maxW)
			s.DrawText(font, margin, y, chunk, panicFG)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = s.Display()
}

// fitPrefix splits s at the longest rune prefix no wider than maxW, always
// taking at least one rune.
func fitPrefix(f tinyfont.Fonter, s string, maxW int) (prefix, rest string) {
	if gfx.TextWidth(f, s) <= maxW {
		return s, ""
	}
	end := 0
	for i := range s {
		if i > 0 && gfx.TextWidth(f, s[:i]) > maxW {
			break
		}
		end = i
	}
	if end == 0 {
		for i := range s {
			if i > 0 {
				return s[:i], s[i:]
			}
		}
		return s, ""
	}
	return s[:end], s[end:]
}
