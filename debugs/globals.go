package debugs

import (
	"github.com/reusee/tbas/tbas"
)

// frameMap is the starlark view of a frame.
func frameMap(frame tbas.Frame) map[string]any {
	m := map[string]any{
		"cells":        ints(frame.Cells),
		"mptr":         frame.MPtr,
		"mcell":        cellAt(frame.Cells, frame.MPtr),
		"buffer":       ints(frame.Buffer),
		"imode":        int(frame.IOMode),
		"imode_name":   frame.IOMode.String(),
		"in_dead_loop": frame.DeadLoop,
		"loop_ref":     frame.LoopRef,
		"eptr":         frame.EPtr,
		"operator":     frame.Operator.Char(),
		"command":      frame.Operator.String(),
		"goto":         frame.Goto,
		"noop":         frame.Noop,
		"msg":          frame.Msg,
		"fault":        frame.Fault,
	}
	return m
}

func cellAt(cells []byte, i int) int {
	if i < 0 || i >= len(cells) {
		return 0
	}
	return int(cells[i])
}

// Globals returns the names visible to queries and the inspector for a run.
func Globals(c *tbas.Context) map[string]any {
	frames := make([]any, len(c.Frames))
	for i, frame := range c.Frames {
		frames[i] = frameMap(frame)
	}
	var errText any
	if c.Err != nil {
		errText = c.Err.Error()
	}
	return map[string]any{
		"program": c.Program,
		"frames":  frames,
		"error":   errText,
		"cells":   ints(c.Memory.Cells),
		"buffer":  ints(c.Memory.Buffer),
		"mptr":    c.Memory.Pointer,
		"eptr":    c.EPtr,
		"imode":   int(c.IOMode),
		"steps":   c.Steps,
		"format_cells": func(i int, format string) string {
			if i < 0 {
				i += len(c.Frames)
			}
			if i < 0 || i >= len(c.Frames) {
				return ""
			}
			return c.Frames[i].FormatCells(format)
		},
	}
}
