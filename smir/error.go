package smir

import "errors"

var (
	ErrUnknownOp      = errors.New("unknown op")
	ErrBadOperand     = errors.New("bad operand")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrBadAddress     = errors.New("bad address")
	ErrInputExhausted = errors.New("input exhausted")
	ErrUnmatchedJump  = errors.New("unmatched jump")
	ErrUnbalancedLoop = errors.New("loop body changes stack depth")
)
