package smir

import (
	"strconv"
	"strings"
)

type Instr struct {
	Op  Op
	Arg int
}

func (i Instr) String() string {
	if i.Op.HasArg() {
		return i.Op.String() + " " + strconv.Itoa(i.Arg)
	}
	return i.Op.String()
}

type Program []Instr

func (p Program) String() string {
	var b strings.Builder
	for _, instr := range p {
		b.WriteString(instr.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func Push(n int) Instr { return Instr{Op: OpPush, Arg: n} }
func Load(addr int) Instr { return Instr{Op: OpLoad, Arg: addr} }
func Store(addr int) Instr { return Instr{Op: OpStore, Arg: addr} }
func Pop() Instr { return Instr{Op: OpPop} }
func Add() Instr { return Instr{Op: OpAdd} }
func Subtract() Instr { return Instr{Op: OpSubtract} }
func BNot() Instr { return Instr{Op: OpBNot} }
func BAnd() Instr { return Instr{Op: OpBAnd} }
func Gte() Instr { return Instr{Op: OpGte} }
func Prnt() Instr { return Instr{Op: OpPrnt} }
func Read() Instr { return Instr{Op: OpRead} }
func LoadRB() Instr { return Instr{Op: OpLoadRB} }
func StoreRB() Instr { return Instr{Op: OpStoreRB} }
func Jfz() Instr { return Instr{Op: OpJfz} }
func Jbnz() Instr { return Instr{Op: OpJbnz} }
