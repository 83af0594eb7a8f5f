// Package lanes builds tape-language fragments by moving a typed cursor over the lane
// triples planned by package layout. The type parameter of a Cursor records which lane
// the pointer is in, so a navigation that assumes the wrong lane does not compile.
package lanes

import (
	"strings"

	"github.com/reusee/brainvm/layout"
)

type Lane interface {
	Walk | StackPointer | Memory
	role() layout.Role
}

type Walk struct{}

func (Walk) role() layout.Role { return layout.Walk }

type StackPointer struct{}

func (StackPointer) role() layout.Role { return layout.StackPointer }

type Memory struct{}

func (Memory) role() layout.Role { return layout.Memory }

// Cursor appends code to a fragment. Cursors are threaded linearly: every method
// returns the cursor to continue with.
type Cursor[L Lane] struct {
	code *strings.Builder
}

// Start begins a fragment with the pointer on the stack pointer cell of the top of stack.
func Start() Cursor[StackPointer] {
	return Cursor[StackPointer]{
		code: new(strings.Builder),
	}
}

// StartAt begins a fragment in an arbitrary lane.
func StartAt[L Lane]() Cursor[L] {
	return Cursor[L]{
		code: new(strings.Builder),
	}
}

func (c Cursor[L]) emit(s string) Cursor[L] {
	c.code.WriteString(s)
	return c
}

func (c Cursor[L]) String() string {
	return c.code.String()
}

// Right moves n triples to the right, staying in the same lane.
func (c Cursor[L]) Right(n int) Cursor[L] {
	return c.emit(strings.Repeat(">>>", n))
}

// Left moves n triples to the left, staying in the same lane.
func (c Cursor[L]) Left(n int) Cursor[L] {
	return c.emit(strings.Repeat("<<<", n))
}

// SearchZeroLeft walks left one triple at a time until the current lane cell is zero.
func (c Cursor[L]) SearchZeroLeft() Cursor[L] {
	return c.emit("[<<<]")
}

// SearchZeroRight walks right one triple at a time until the current lane cell is zero.
func (c Cursor[L]) SearchZeroRight() Cursor[L] {
	return c.emit("[>>>]")
}

func (c Cursor[L]) Inc(n int) Cursor[L] {
	return c.emit(strings.Repeat("+", n))
}

func (c Cursor[L]) Dec(n int) Cursor[L] {
	return c.emit(strings.Repeat("-", n))
}

// Clear decrements the current cell to zero.
func (c Cursor[L]) Clear() Cursor[L] {
	return c.emit("[-]")
}

// Loop wraps body in a bracket pair. The body starts and ends in lane L; the triple
// it ends on is the one tested for the next iteration.
func (c Cursor[L]) Loop(body func(Cursor[L]) Cursor[L]) Cursor[L] {
	c = c.emit("[")
	c = body(c)
	return c.emit("]")
}

// Switch moves to another lane of the same triple.
func Switch[To, From Lane](c Cursor[From]) Cursor[To] {
	var from From
	var to To
	delta := int(to.role()) - int(from.role())
	switch {
	case delta > 0:
		c.code.WriteString(strings.Repeat(">", delta))
	case delta < 0:
		c.code.WriteString(strings.Repeat("<", -delta))
	}
	return Cursor[To]{
		code: c.code,
	}
}
