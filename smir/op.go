// Package smir defines the stack-machine instruction set that package compiler lowers
// to tape language.
package smir

import (
	"fmt"
)

type Op uint8

const (
	OpPush Op = iota
	OpPop
	OpAdd
	OpSubtract
	OpBNot
	OpBAnd
	OpGte
	OpPrnt
	OpRead
	OpLoad
	OpStore
	OpLoadRB
	OpStoreRB
	OpJfz
	OpJbnz

	NumOps int = iota
)

type opInfo struct {
	name   string
	hasArg bool
	// values consumed from the stack, and values left in their place
	pops   int
	pushes int
}

var opInfos = [...]opInfo{
	OpPush:     {name: "push", hasArg: true, pushes: 1},
	OpPop:      {name: "pop", pops: 1},
	OpAdd:      {name: "add", pops: 2, pushes: 1},
	OpSubtract: {name: "subtract", pops: 2, pushes: 1},
	OpBNot:     {name: "bnot", pops: 1, pushes: 1},
	OpBAnd:     {name: "band", pops: 2, pushes: 1},
	OpGte:      {name: "gte", pops: 2, pushes: 1},
	OpPrnt:     {name: "prnt", pops: 1, pushes: 1},
	OpRead:     {name: "read", pushes: 1},
	OpLoad:     {name: "load", hasArg: true, pushes: 1},
	OpStore:    {name: "store", hasArg: true, pops: 1, pushes: 1},
	OpLoadRB:   {name: "loadrb", pushes: 1},
	OpStoreRB:  {name: "storerb", pops: 1, pushes: 1},
	OpJfz:      {name: "jfz", pops: 1, pushes: 1},
	OpJbnz:     {name: "jbnz", pops: 1, pushes: 1},
}

var _ = [1]struct{}{}[len(opInfos)-NumOps]

var opsByName = func() map[string]Op {
	ret := make(map[string]Op, NumOps)
	for i, info := range opInfos {
		ret[info.name] = Op(i)
	}
	return ret
}()

func (o Op) Valid() bool {
	return int(o) < NumOps
}

func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opInfos[o].name
}

// HasArg reports whether the instruction takes an integer operand.
func (o Op) HasArg() bool {
	return opInfos[o].hasArg
}

// Pops is the stack depth the instruction requires.
func (o Op) Pops() int {
	return opInfos[o].pops
}

func (o Op) Pushes() int {
	return opInfos[o].pushes
}

// Delta is the net change of stack depth.
func (o Op) Delta() int {
	return opInfos[o].pushes - opInfos[o].pops
}

func ParseOp(name string) (Op, error) {
	op, ok := opsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	return op, nil
}
