package tape

import "fmt"

// CellMode selects the value range of cells.
type CellMode int

const (
	// cells hold any int, no range check
	ModeUnbounded CellMode = iota
	// cells hold 0 to 255; leaving the range is a fatal error
	ModeStrictByte
	// cells hold 0 to 255 and wrap around silently
	ModeWrapByte
)

const (
	ByteMin = 0
	ByteMax = 255
)

var cellModeNames = map[CellMode]string{
	ModeUnbounded:  "unbounded",
	ModeStrictByte: "byte",
	ModeWrapByte:   "wrap",
}

func (m CellMode) String() string {
	if name, ok := cellModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CellMode(%d)", int(m))
}

func ParseCellMode(name string) (CellMode, error) {
	for mode, n := range cellModeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown cell mode: %q", name)
}

// normalize applies the mode's range to v.
func (m CellMode) normalize(v int) (int, error) {
	switch m {
	case ModeStrictByte:
		if v > ByteMax {
			return v, ErrCellOverflow
		}
		if v < ByteMin {
			return v, ErrCellUnderflow
		}
	case ModeWrapByte:
		v &= ByteMax
	}
	return v, nil
}
