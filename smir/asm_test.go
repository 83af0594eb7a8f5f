package smir

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParseAsm(t *testing.T) {
	program, err := ParseAsmString(`
# countdown
push 3
store 4   # counter
jfz
  prnt
  push 1
  subtract
  store 4
jbnz
pop
`)
	if err != nil {
		t.Fatal(err)
	}
	expected := Program{
		Push(3),
		Store(4),
		Jfz(),
		Prnt(),
		Push(1),
		Subtract(),
		Store(4),
		Jbnz(),
		Pop(),
	}
	if !slices.Equal(program, expected) {
		t.Fatalf("got %v", program)
	}

	again, err := ParseAsmString(program.String())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(again, program) {
		t.Fatalf("got %v", again)
	}
}

func TestParseAsmErrors(t *testing.T) {
	for _, c := range []struct {
		src  string
		err  error
		line string
	}{
		{"push 1\nfoo", ErrUnknownOp, "line 2"},
		{"push", ErrBadOperand, "line 1"},
		{"pop 1", ErrBadOperand, "line 1"},
		{"\n\nload x", ErrBadOperand, "line 3"},
	} {
		_, err := ParseAsmString(c.src)
		if !errors.Is(err, c.err) {
			t.Fatalf("%q: got %v", c.src, err)
		}
		if !strings.Contains(err.Error(), c.line) {
			t.Fatalf("%q: got %v", c.src, err)
		}
	}
}

func TestOpInfo(t *testing.T) {
	for op := range NumOps {
		o := Op(op)
		parsed, err := ParseOp(o.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != o {
			t.Fatalf("got %v", parsed)
		}
		if o.Pushes() > 1 {
			t.Fatalf("%v pushes %d", o, o.Pushes())
		}
	}
	if Op(NumOps).Valid() {
		t.Fatal()
	}
	if s := Op(200).String(); s != "Op(200)" {
		t.Fatalf("got %s", s)
	}
	if OpLoadRB.Delta() != 1 || OpStoreRB.Delta() != 0 || OpGte.Delta() != -1 {
		t.Fatal()
	}
}
