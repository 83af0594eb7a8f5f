package compiler

import (
	"github.com/reusee/brainvm/lanes"
)

// Every template starts and ends on the stack pointer cell of the top of stack.
// Stack effects are listed in smir; the comments below name the cells each template
// leaves changed besides the stack itself.

// push widens the stack and sets the new top to n.
func push(n int) string {
	c := lanes.Widen(lanes.Start())
	m := lanes.Switch[lanes.Memory](c).Clear().Inc(n)
	return lanes.Switch[lanes.StackPointer](m).String()
}

// pop shrinks the stack. The old top memory cell keeps its value.
func pop(int) string {
	return lanes.Shrink(lanes.Start()).String()
}

// drain moves the value above the new top into it, adding when sign is +1 and
// subtracting when it is -1. The drained cell ends at zero.
func drain(sign int) string {
	c := lanes.Shrink(lanes.Start())
	m := lanes.Switch[lanes.Memory](c).Right(1)
	m = m.Loop(func(y lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		y = y.Dec(1).Left(1)
		if sign > 0 {
			y = y.Inc(1)
		} else {
			y = y.Dec(1)
		}
		return y.Right(1)
	})
	m = m.Left(1)
	return lanes.Switch[lanes.StackPointer](m).String()
}

func add(int) string {
	return drain(+1)
}

func subtract(int) string {
	return drain(-1)
}

// bnot replaces the top with 1 if it is zero and 0 otherwise. The triple above the
// top is used as scratch and left at zero.
func bnot(int) string {
	c := lanes.Widen(lanes.Start())
	// temp = 0
	m := lanes.Switch[lanes.Memory](c).Clear()
	// x[temp+x[-]]+
	m = m.Left(1).Loop(func(x lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		return x.Right(1).Inc(1).Left(1).Clear()
	}).Inc(1)
	// temp[x-temp-]
	m = m.Right(1).Loop(func(temp lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		return temp.Left(1).Dec(1).Right(1).Dec(1)
	})
	c = lanes.Switch[lanes.StackPointer](m)
	return lanes.Shrink(c).String()
}

// band replaces the two top values x, y with 1 if both are nonzero and 0 otherwise.
// It uses the memory cells two and three triples above x as scratch; y is restored
// in the abandoned triple.
func band(int) string {
	c := lanes.Shrink(lanes.Start())
	m := lanes.Switch[lanes.Memory](c)

	// temp0 = 0, temp1 = 0
	m = m.Right(2).Clear().Right(1).Clear().Left(3)

	// x[temp1+x-]
	m = m.Loop(func(x lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		return x.Right(3).Inc(1).Left(3).Dec(1)
	})

	m = m.Right(3).Loop(func(temp1 lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		temp1 = temp1.Clear()
		// y[temp1+temp0+y-]
		y := temp1.Left(2).Loop(func(y lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
			return y.Right(2).Inc(1).Left(1).Inc(1).Left(1).Dec(1)
		})
		// temp0[y+temp0-]
		temp0 := y.Right(1).Loop(func(temp0 lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
			return temp0.Left(1).Inc(1).Right(1).Dec(1)
		})
		// temp1[x+temp1[-]]
		return temp0.Right(1).Loop(func(temp1 lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
			return temp1.Left(3).Inc(1).Right(3).Clear()
		})
	})

	m = m.Left(3)
	return lanes.Switch[lanes.StackPointer](m).String()
}

// gte replaces x, y with 1 if x >= y and 0 otherwise, for non-negative operands.
// Both operands are biased by one and copied four triples up, then decremented in
// lockstep; the copy of y reaching zero first, or together with x, means x >= y.
// Scratch: memory cells one to six triples above x.
func gte(int) string {
	c := lanes.Shrink(lanes.Start())
	m := lanes.Switch[lanes.Memory](c)

	// bias
	m = m.Inc(1).Right(1).Inc(1).Left(1)

	// move x and y four triples up
	moveUp := func(v lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		v = v.Right(4).Clear().Left(4)
		return v.Loop(func(v lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
			return v.Dec(1).Right(4).Inc(1).Left(4)
		})
	}
	m = moveUp(m)
	m = moveUp(m.Right(1))

	// flags: 1 at x+2, 0 at x+3, 0 at x+6 as the stop cell of the race
	m = m.Right(1).Clear().Inc(1)
	m = m.Right(1).Clear()
	m = m.Right(3).Clear()

	// race on the copies: [->-[>]<<]
	m = m.Left(2).Loop(func(a lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		b := a.Dec(1).Right(1).Dec(1)
		b = b.Loop(func(b lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
			return b.Right(1)
		})
		return b.Left(2)
	})

	// stopped at x+3 if y ran out first, at x+4 otherwise
	m = m.Left(1)
	// at x+2 holding 1: x = 1
	m = m.Loop(func(flag lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		return flag.Dec(1).Left(2).Inc(1).Right(2)
	})
	m = m.Left(1)
	// at x+2 still holding 1 on the other path: clear it and step to x+1
	m = m.Loop(func(flag lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		return flag.Dec(1).Left(1)
	})
	m = m.Left(1)

	return lanes.Switch[lanes.StackPointer](m).String()
}

// prnt outputs the top without removing it.
func prnt(int) string {
	m := lanes.Print(lanes.Switch[lanes.Memory](lanes.Start()))
	return lanes.Switch[lanes.StackPointer](m).String()
}

// read pushes the next input value.
func read(int) string {
	m := lanes.Read(lanes.Switch[lanes.Memory](lanes.Widen(lanes.Start())))
	return lanes.Switch[lanes.StackPointer](m).String()
}

// load pushes a copy of mem[addr]. mem[addr] is drained into the new top and REG_A,
// then restored from REG_A. REG_A ends at zero.
func load(addr int) string {
	c := lanes.Widen(lanes.Start())
	m := lanes.Switch[lanes.Memory](c).Clear()

	m = lanes.ToRegA(m).Clear().Right(addr)
	m = m.Loop(func(v lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		top := lanes.ToTopMemory(lanes.ToRegA(v)).Inc(1)
		return lanes.ToRegA(top).Inc(1).Right(addr).Dec(1)
	})

	m = lanes.ToRegA(m).Loop(func(regA lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		v := regA.Right(addr).Inc(1)
		return lanes.ToRegA(v).Dec(1)
	})

	return lanes.ToTop(m).String()
}

// store copies the top into mem[addr]. The top is drained into mem[addr] and REG_A,
// then restored from REG_A. REG_A ends at zero.
func store(addr int) string {
	m := lanes.ToRegA(lanes.Start()).Clear().Right(addr).Clear()

	m = lanes.ToTopMemory(m).Loop(func(top lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		v := lanes.ToRegA(top).Inc(1).Right(addr).Inc(1)
		return lanes.ToTopMemory(v).Dec(1)
	})

	m = lanes.ToRegA(m).Loop(func(regA lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		top := lanes.ToTopMemory(regA).Inc(1)
		return lanes.ToRegA(top).Dec(1)
	})

	return lanes.ToTop(m).String()
}

// placeMarker zeroes the stack pointer cell of triple REG_B as a movable marker and
// walks it right until it sits on triple mem[REG_B], consuming REG_B. It returns on
// the memory cell of REG_B.
//
// While the marker is placed, a stack pointer lane search from REG_A stops at the
// marker, not at the top of stack.
func placeMarker(c lanes.Cursor[lanes.StackPointer]) lanes.Cursor[lanes.Memory] {
	regA := lanes.ToRegA(c)
	marker := lanes.Switch[lanes.StackPointer](regA).Right(1).Dec(1)
	// the marker starts at triple 1, so one step is already taken
	regB := lanes.Switch[lanes.Memory](marker).Dec(1)
	return regB.Loop(func(regB lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		regB = regB.Dec(1)
		marker := lanes.Switch[lanes.StackPointer](regB).Left(1).SearchZeroRight()
		marker = marker.Inc(1).Right(1).Dec(1)
		return lanes.ToRegA(marker).Right(1)
	})
}

// toMarker goes from any triple at or below the marker to the marker's stack
// pointer cell.
func toMarker[L lanes.Lane](c lanes.Cursor[L]) lanes.Cursor[lanes.StackPointer] {
	return lanes.ToTop(lanes.ToRegA(c))
}

// markerToTop goes from the marker to the stack pointer cell of the top of stack,
// skipping the marker's own zero.
func markerToTop(c lanes.Cursor[lanes.StackPointer]) lanes.Cursor[lanes.StackPointer] {
	return c.Right(1).SearchZeroRight()
}

// topToMarker goes from the top of stack down to the marker below it.
func topToMarker(c lanes.Cursor[lanes.StackPointer]) lanes.Cursor[lanes.StackPointer] {
	return c.Left(1).SearchZeroLeft()
}

// loadrb pushes a copy of mem[REG_B]. REG_B and REG_A end at zero.
func loadrb(int) string {
	c := lanes.Widen(lanes.Start())
	c = lanes.Switch[lanes.StackPointer](lanes.Switch[lanes.Memory](c).Clear())

	m := lanes.Switch[lanes.Memory](toMarker(placeMarker(c)))

	// drain mem[addr] into REG_A and the new top
	m = m.Loop(func(v lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		v = v.Dec(1)
		regA := lanes.ToRegA(v).Inc(1)
		top := lanes.Switch[lanes.Memory](markerToTop(toMarker(regA))).Inc(1)
		return lanes.Switch[lanes.Memory](topToMarker(lanes.Switch[lanes.StackPointer](top)))
	})

	// restore mem[addr] from REG_A
	m = lanes.ToRegA(m).Loop(func(regA lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		regA = regA.Dec(1)
		v := lanes.Switch[lanes.Memory](toMarker(regA)).Inc(1)
		return lanes.ToRegA(v)
	})

	// remove the marker
	marker := toMarker(m).Inc(1)
	return marker.SearchZeroRight().String()
}

// storerb copies the top into mem[REG_B]. REG_B and REG_A end at zero.
func storerb(int) string {
	regB := placeMarker(lanes.Start())

	// mem[addr] = 0
	v := lanes.Switch[lanes.Memory](lanes.ToTop(regB)).Clear()

	// drain the top into REG_A and mem[addr]
	top := lanes.Switch[lanes.Memory](markerToTop(lanes.Switch[lanes.StackPointer](v)))
	top = top.Loop(func(top lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		top = top.Dec(1)
		regA := lanes.ToRegA(top).Inc(1)
		v := lanes.Switch[lanes.Memory](toMarker(regA)).Inc(1)
		return lanes.Switch[lanes.Memory](markerToTop(lanes.Switch[lanes.StackPointer](v)))
	})

	// remove the marker
	marker := toMarker(top).Inc(1)

	// restore the top from REG_A
	m := lanes.ToRegA(marker).Loop(func(regA lanes.Cursor[lanes.Memory]) lanes.Cursor[lanes.Memory] {
		regA = regA.Dec(1)
		top := lanes.ToTopMemory(regA).Inc(1)
		return lanes.ToRegA(top)
	})

	return lanes.ToTop(m).String()
}

// jfz opens a loop on the top value: if it is zero, execution continues after the
// matching jbnz.
func jfz(int) string {
	m := lanes.OpenLoop(lanes.Switch[lanes.Memory](lanes.Start()))
	return lanes.Switch[lanes.StackPointer](m).String()
}

// jbnz closes the loop opened by the matching jfz: if the top is nonzero, execution
// continues after that jfz.
func jbnz(int) string {
	m := lanes.CloseLoop(lanes.Switch[lanes.Memory](lanes.Start()))
	return lanes.Switch[lanes.StackPointer](m).String()
}
