package tape

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedBracket = errors.New("unmatched bracket")
	ErrCellOverflow     = errors.New("cell overflow")
	ErrCellUnderflow    = errors.New("cell underflow")
	ErrInputExhausted   = errors.New("input exhausted")
	ErrPointerUnderflow = errors.New("pointer moved left of cell 0")
	ErrNotProfiling     = errors.New("machine was not created with profiling")
)

// MachineError is a fatal runtime error with the machine state at the failing
// instruction.
type MachineError struct {
	Err     error
	IP      int
	Label   string
	Pointer int
	// cells around the pointer, starting at WindowStart
	Window      []int
	WindowStart int
}

const windowRadius = 8

func (m *MachineError) Error() string {
	var sb strings.Builder
	sb.WriteString(m.Err.Error())
	fmt.Fprintf(&sb, " at ip %d", m.IP)
	if m.Label != "" {
		fmt.Fprintf(&sb, " (%s)", m.Label)
	}
	fmt.Fprintf(&sb, ", pointer %d, cells[%d:]=%v", m.Pointer, m.WindowStart, m.Window)
	return sb.String()
}

func (m *MachineError) Unwrap() error {
	return m.Err
}
