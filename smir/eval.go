package smir

import (
	"fmt"

	"github.com/reusee/brainvm/layout"
)

// Evaluator executes SM-IR directly. It is the reference for the observable
// behavior of compiled programs: output, final stack and memory.
type Evaluator struct {
	Program Program
	Jumps   []int
	// indexed by address; REG_A is never written
	Mem    []int
	Stack  []int
	Input  []int
	Output []int
	PC     int
}

func NewEvaluator(program Program, vars int) (*Evaluator, error) {
	analysis, err := Analyze(program, vars)
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		Program: program,
		Jumps:   analysis.Jumps,
		Mem:     make([]int, layout.FirstVar+vars),
	}, nil
}

// Eval runs program to completion.
func Eval(program Program, vars int, input []int) (*Evaluator, error) {
	e, err := NewEvaluator(program, vars)
	if err != nil {
		return nil, err
	}
	e.Input = input
	if err := e.Run(); err != nil {
		return e, err
	}
	return e, nil
}

func (e *Evaluator) Top() int {
	return e.Stack[len(e.Stack)-1]
}

func (e *Evaluator) push(v int) {
	e.Stack = append(e.Stack, v)
}

func (e *Evaluator) pop() int {
	v := e.Stack[len(e.Stack)-1]
	e.Stack = e.Stack[:len(e.Stack)-1]
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// indirect consumes REG_B and returns the address it held.
func (e *Evaluator) indirect() (int, error) {
	addr := e.Mem[layout.RegB]
	e.Mem[layout.RegB] = 0
	if addr <= layout.RegA || addr >= len(e.Mem) {
		return 0, fmt.Errorf("instruction %d: %w: REG_B = %d", e.PC, ErrBadAddress, addr)
	}
	return addr, nil
}

func (e *Evaluator) Run() error {
	for e.PC < len(e.Program) {
		instr := e.Program[e.PC]
		if len(e.Stack) < instr.Op.Pops() {
			return fmt.Errorf("instruction %d: %w", e.PC, ErrStackUnderflow)
		}

		switch instr.Op {
		case OpPush:
			e.push(instr.Arg)
		case OpPop:
			e.pop()
		case OpAdd:
			y, x := e.pop(), e.pop()
			e.push(x + y)
		case OpSubtract:
			y, x := e.pop(), e.pop()
			e.push(x - y)
		case OpBNot:
			e.push(boolInt(e.pop() == 0))
		case OpBAnd:
			y, x := e.pop(), e.pop()
			e.push(boolInt(x != 0 && y != 0))
		case OpGte:
			y, x := e.pop(), e.pop()
			e.push(boolInt(x >= y))
		case OpPrnt:
			e.Output = append(e.Output, e.Top())
		case OpRead:
			if len(e.Input) == 0 {
				return fmt.Errorf("instruction %d: %w", e.PC, ErrInputExhausted)
			}
			e.push(e.Input[0])
			e.Input = e.Input[1:]
		case OpLoad:
			e.push(e.Mem[instr.Arg])
		case OpStore:
			e.Mem[instr.Arg] = e.Top()
		case OpLoadRB:
			addr, err := e.indirect()
			if err != nil {
				return err
			}
			e.push(e.Mem[addr])
		case OpStoreRB:
			addr, err := e.indirect()
			if err != nil {
				return err
			}
			e.Mem[addr] = e.Top()
		case OpJfz:
			if e.Top() == 0 {
				e.PC = e.Jumps[e.PC]
			}
		case OpJbnz:
			if e.Top() != 0 {
				e.PC = e.Jumps[e.PC]
			}
		}
		e.PC++
	}
	return nil
}
