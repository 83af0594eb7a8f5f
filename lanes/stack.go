package lanes

// Widen moves the top-of-stack sentinel one triple to the right.
func Widen(c Cursor[StackPointer]) Cursor[StackPointer] {
	return c.Inc(1).Right(1).Dec(1)
}

// Shrink moves the top-of-stack sentinel one triple to the left. The memory cell of
// the abandoned triple keeps its value.
func Shrink(c Cursor[StackPointer]) Cursor[StackPointer] {
	return c.Inc(1).Left(1).Dec(1)
}

// ToRegA walks left on the walk lane to the zero marker of REG_A and enters its
// memory cell. Every triple passed must have a nonzero walk cell.
func ToRegA[L Lane](c Cursor[L]) Cursor[Memory] {
	w := Switch[Walk](c).SearchZeroLeft()
	return Switch[Memory](w)
}

// ToTop walks right on the stack pointer lane to the first zero, which is the
// top-of-stack sentinel unless a marker has been placed below it.
func ToTop[L Lane](c Cursor[L]) Cursor[StackPointer] {
	return Switch[StackPointer](c).SearchZeroRight()
}

// ToTopMemory is ToTop followed by entering the memory cell.
func ToTopMemory[L Lane](c Cursor[L]) Cursor[Memory] {
	return Switch[Memory](ToTop(c))
}

// Print outputs the current memory cell.
func Print(c Cursor[Memory]) Cursor[Memory] {
	return c.emit(".")
}

// Read stores the next input value into the current memory cell.
func Read(c Cursor[Memory]) Cursor[Memory] {
	return c.emit(",")
}

// OpenLoop emits an unmatched loop start. The matching CloseLoop is emitted by a
// later fragment in the same memory lane.
func OpenLoop(c Cursor[Memory]) Cursor[Memory] {
	return c.emit("[")
}

func CloseLoop(c Cursor[Memory]) Cursor[Memory] {
	return c.emit("]")
}
