package debugs

import (
	"github.com/reusee/bf/bfvm"
)

// MachineGlobals exposes the state of m to starlark sessions.
func MachineGlobals(m *bfvm.Machine) map[string]any {
	return map[string]any{
		"program": m.Program.Name,
		"pc":      m.PC,
		"steps":   m.Steps,
		"cursor":  m.Tape.Cursor,
		"done":    m.Done(),
		"bounds":  m.Tape.Bounds.String(),
		"output":  m.Output.String(),
		"tape":    m.Tape.Cells,
		"used":    usedCells(m.Tape),
		"cell": func(i int) int {
			if i < 0 || i >= len(m.Tape.Cells) {
				return -1
			}
			return int(m.Tape.Cells[i])
		},
	}
}

// usedCells returns the cells up to the last non-zero one or the cursor, whichever is further.
func usedCells(tape *bfvm.Tape) []int {
	end := tape.Cursor + 1
	for i := len(tape.Cells) - 1; i >= end; i-- {
		if tape.Cells[i] != 0 {
			end = i + 1
			break
		}
	}
	ret := make([]int, end)
	for i := range end {
		ret[i] = int(tape.Cells[i])
	}
	return ret
}
