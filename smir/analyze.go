package smir

import (
	"fmt"

	"github.com/reusee/brainvm/layout"
)

type Analysis struct {
	// stack depth before each instruction
	Depths []int
	// matching jump for jfz and jbnz, -1 for other instructions
	Jumps    []int
	MaxDepth int
}

// Analyze checks operands, stack depth and jump structure of a program that uses
// vars user variables.
//
// Depth is tracked along the instruction order. A jfz/jbnz pair must enclose a body
// with zero net stack effect, so the depth at every instruction is the same whichever
// way the jumps go.
func Analyze(program Program, vars int) (*Analysis, error) {
	ret := &Analysis{
		Depths: make([]int, len(program)),
		Jumps:  make([]int, len(program)),
	}

	var open []int
	depth := 0
	for i, instr := range program {
		ret.Jumps[i] = -1
		ret.Depths[i] = depth

		if !instr.Op.Valid() {
			return nil, fmt.Errorf("instruction %d: %w: %v", i, ErrUnknownOp, instr.Op)
		}

		switch instr.Op {
		case OpPush:
			if instr.Arg < 0 {
				return nil, fmt.Errorf("instruction %d: %w: push %d", i, ErrBadOperand, instr.Arg)
			}
		case OpLoad, OpStore:
			if instr.Arg <= layout.RegA || instr.Arg >= layout.FirstVar+vars {
				return nil, fmt.Errorf("instruction %d: %w: %s %d", i, ErrBadAddress, instr.Op, instr.Arg)
			}
		}

		if depth < instr.Op.Pops() {
			return nil, fmt.Errorf("instruction %d: %w: %s needs %d, depth %d",
				i, ErrStackUnderflow, instr.Op, instr.Op.Pops(), depth)
		}

		switch instr.Op {
		case OpJfz:
			open = append(open, i)
		case OpJbnz:
			if len(open) == 0 {
				return nil, fmt.Errorf("instruction %d: %w: jbnz without jfz", i, ErrUnmatchedJump)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			if ret.Depths[start] != depth {
				return nil, fmt.Errorf("instructions %d-%d: %w: %d -> %d",
					start, i, ErrUnbalancedLoop, ret.Depths[start], depth)
			}
			ret.Jumps[start] = i
			ret.Jumps[i] = start
		}

		depth += instr.Op.Delta()
		ret.MaxDepth = max(ret.MaxDepth, depth)
	}

	if len(open) > 0 {
		return nil, fmt.Errorf("instruction %d: %w: jfz without jbnz", open[len(open)-1], ErrUnmatchedJump)
	}

	return ret, nil
}
