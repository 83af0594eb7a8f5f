package debugs

import (
	"github.com/reusee/brainvm/layout"
	"github.com/reusee/brainvm/tape"
)

// MachineGlobals exposes a machine to the tap REPL.
func MachineGlobals(m *tape.Machine) map[string]any {
	globals := map[string]any{
		"pointer": m.Pointer,
		"ip":      m.IP,
		"steps":   m.Steps,
		"output":  m.Output,
		"input":   m.Input,
		"halted":  m.Halted,
		"cells":   m.Cells,
		"mode":    m.Config.Mode,

		// cell value at index
		"cell": func(i int) int {
			return m.Cell(i)
		},
		// walk, stack pointer and memory cells of triple i
		"triple": func(i int) []int {
			return []int{
				m.Cell(layout.Cell(i, layout.Walk)),
				m.Cell(layout.Cell(i, layout.StackPointer)),
				m.Cell(layout.Cell(i, layout.Memory)),
			}
		},
		// label of the code span containing offset ip
		"label": func(ip int) string {
			if i := m.Program.SpanAt(ip); i >= 0 {
				return m.Program.Spans[i].Label
			}
			return ""
		},
		"code": func(start, end int) string {
			code := m.Program.Code
			start = max(0, min(start, len(code)))
			end = max(start, min(end, len(code)))
			return string(code[start:end])
		},
	}
	if m.Err != nil {
		globals["error"] = m.Err
	}
	return globals
}
