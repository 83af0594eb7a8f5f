package smir

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseAsm reads one instruction per line in the form `op [int]`. Text after `#` is
// a comment; blank lines are skipped.
func ParseAsm(r io.Reader) (Program, error) {
	var program Program
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		op, err := ParseOp(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		instr := Instr{Op: op}
		switch {
		case op.HasArg() && len(fields) != 2:
			return nil, fmt.Errorf("line %d: %w: %s takes one operand", lineNo, ErrBadOperand, op)
		case !op.HasArg() && len(fields) != 1:
			return nil, fmt.Errorf("line %d: %w: %s takes no operand", lineNo, ErrBadOperand, op)
		case op.HasArg():
			instr.Arg, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrBadOperand, err)
			}
		}
		program = append(program, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return program, nil
}

func ParseAsmString(src string) (Program, error) {
	return ParseAsm(strings.NewReader(src))
}
