package layout

import (
	"fmt"
	"strings"
)

// Role is the position of a cell inside its lane triple.
type Role int

const (
	Walk Role = iota
	StackPointer
	Memory
)

func (r Role) String() string {
	switch r {
	case Walk:
		return "walk"
	case StackPointer:
		return "stack_pointer"
	case Memory:
		return "memory"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Width is the number of cells in one lane triple.
const Width = 3

// Register and variable addresses, in triples.
const (
	RegA = iota
	RegB
	RegC
	RegD
	FirstVar
)

type Layout struct {
	Vars          int
	StackCapacity int
	Cells         []int
	Pointer       int
}

// Plan computes the initial tape contents for vars user variables and a stack region
// of capacity triples. The pointer rests on the stack pointer cell of the stack base.
func Plan(vars, capacity int) Layout {
	if vars < 0 {
		panic(fmt.Errorf("negative variable count: %d", vars))
	}
	if capacity < 1 {
		panic(fmt.Errorf("stack capacity must be positive, got %d", capacity))
	}

	triples := FirstVar + vars + capacity
	cells := make([]int, 0, triples*Width)

	// REG_A: the zero walk cell marks the start of the tape
	cells = append(cells, 0, 1, 0)
	// REG_B, REG_C, REG_D and user variables
	for range RegD + vars {
		cells = append(cells, 1, 1, 0)
	}
	// stack base holds the top-of-stack sentinel
	cells = append(cells, 1, 0, 0)
	for range capacity - 1 {
		cells = append(cells, 1, 1, 0)
	}

	return Layout{
		Vars:          vars,
		StackCapacity: capacity,
		Cells:         cells,
		Pointer:       Cell(FirstVar+vars, StackPointer),
	}
}

// Cell returns the tape index of role in the given triple.
func Cell(triple int, role Role) int {
	return triple*Width + int(role)
}

// Base is the triple index of the stack base.
func (l Layout) Base() int {
	return FirstVar + l.Vars
}

// Triples is the number of triples initialized by the plan.
func (l Layout) Triples() int {
	return len(l.Cells) / Width
}

// Addressable reports whether addr is a valid static load/store address.
func (l Layout) Addressable(addr int) bool {
	return addr > RegA && addr < l.Base()
}

// Label names the init segment.
func (l Layout) Label() string {
	return fmt.Sprintf("init_m_%d_s_%d", l.Vars, l.StackCapacity)
}

// InitCode writes the planned cells onto a zeroed tape and moves the pointer to the
// stack pointer cell of the top of stack.
func (l Layout) InitCode() string {
	var b strings.Builder
	for _, v := range l.Cells {
		b.WriteString(strings.Repeat("+", v))
		b.WriteByte('>')
	}
	// from one past the last cell to the last stack pointer cell
	b.WriteString(strings.Repeat("<", Width-int(StackPointer)))
	b.WriteString("[" + strings.Repeat("<", Width) + "]")
	return b.String()
}

// TopTriple finds the stack sentinel in cells laid out by l, returning -1 if the
// stack region holds no sentinel.
func (l Layout) TopTriple(cells []int) int {
	for triple := l.Base(); triple < l.Triples(); triple++ {
		idx := Cell(triple, StackPointer)
		if idx >= len(cells) {
			break
		}
		if cells[idx] == 0 {
			return triple
		}
	}
	return -1
}

// Depth returns the number of values pushed above the stack base, or -1 if no
// sentinel is found.
func (l Layout) Depth(cells []int) int {
	top := l.TopTriple(cells)
	if top < 0 {
		return -1
	}
	return top - l.Base()
}
