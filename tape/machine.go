package tape

import (
	"log/slog"

	"github.com/reusee/brainvm/layout"
	"github.com/reusee/brainvm/logs"
)

type Config struct {
	Mode CellMode
	// count executions per instruction
	Profile bool
	// yield InterruptYield every this many steps; 0 never interrupts
	YieldEvery int
}

type Machine struct {
	Program *Program
	Config  Config
	Logger  logs.Logger

	Cells   []int
	Pointer int
	IP      int
	Input   []int
	Output  []int
	Steps   int
	Visits  []int

	Halted bool
	Err    error
}

func New(program *Program, config Config) *Machine {
	m := &Machine{
		Program: program,
		Config:  config,
		Logger:  slog.New(slog.DiscardHandler),
		Cells:   make([]int, 0, 256),
	}
	if config.Profile {
		m.Visits = make([]int, len(program.Code))
	}
	return m
}

// Preload places planned cells on the tape as if the layout's init code had run.
func (m *Machine) Preload(plan layout.Layout) {
	m.Cells = append(m.Cells[:0], plan.Cells...)
	m.Pointer = plan.Pointer
}

// Cell returns the value at index i; cells never written read as zero.
func (m *Machine) Cell(i int) int {
	if i < 0 || i >= len(m.Cells) {
		return 0
	}
	return m.Cells[i]
}

func (m *Machine) current() int {
	return m.Cell(m.Pointer)
}

func (m *Machine) setCurrent(v int) {
	if m.Pointer >= len(m.Cells) {
		m.Cells = append(m.Cells, make([]int, m.Pointer-len(m.Cells)+1)...)
	}
	m.Cells[m.Pointer] = v
}

// Feed appends values to the input queue.
func (m *Machine) Feed(values ...int) {
	m.Input = append(m.Input, values...)
}

func (m *Machine) fail(err error) error {
	start := max(0, m.Pointer-windowRadius)
	end := m.Pointer + windowRadius + 1
	window := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		window = append(window, m.Cell(i))
	}
	e := &MachineError{
		Err:         err,
		IP:          m.IP,
		Pointer:     m.Pointer,
		Window:      window,
		WindowStart: start,
	}
	if i := m.Program.SpanAt(m.IP); i >= 0 {
		e.Label = m.Program.Spans[i].Label
	}
	m.Halted = true
	m.Err = e
	m.Logger.Error("machine fault",
		"error", err,
		"ip", e.IP,
		"label", e.Label,
		"pointer", e.Pointer,
	)
	return e
}
