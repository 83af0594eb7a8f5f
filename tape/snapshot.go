package tape

import (
	"encoding/gob"
	"fmt"
	"io"
)

type state struct {
	Cells   []int
	Pointer int
	IP      int
	Input   []int
	Output  []int
	Steps   int
	Visits  []int
	Halted  bool
}

// Snapshot encodes the execution state. The program and config are not included.
func (m *Machine) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(state{
		Cells:   m.Cells,
		Pointer: m.Pointer,
		IP:      m.IP,
		Input:   m.Input,
		Output:  m.Output,
		Steps:   m.Steps,
		Visits:  m.Visits,
		Halted:  m.Halted,
	})
}

// Restore loads a state written by Snapshot from a machine running the same program.
func (m *Machine) Restore(r io.Reader) error {
	var s state
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return err
	}
	if s.IP > len(m.Program.Code) {
		return fmt.Errorf("snapshot ip %d beyond program size %d", s.IP, len(m.Program.Code))
	}
	if s.Visits != nil && len(s.Visits) != len(m.Program.Code) {
		return fmt.Errorf("snapshot visit counters do not match program size")
	}
	m.Cells = s.Cells
	m.Pointer = s.Pointer
	m.IP = s.IP
	m.Input = s.Input
	m.Output = s.Output
	m.Steps = s.Steps
	if m.Config.Profile {
		m.Visits = s.Visits
		if m.Visits == nil {
			m.Visits = make([]int, len(m.Program.Code))
		}
	}
	m.Halted = s.Halted
	m.Err = nil
	return nil
}
