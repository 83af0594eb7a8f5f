package tape

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
)

func execute(t *testing.T, code string, config Config, input ...int) *Machine {
	t.Helper()
	program, err := Parse(code)
	if err != nil {
		t.Fatal(err)
	}
	m := New(program, config)
	m.Feed(input...)
	if err := m.Execute(t.Context()); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMachine(t *testing.T) {
	m := execute(t, "++>+++[-<+>]<.", Config{})
	if !slices.Equal(m.Output, []int{5}) {
		t.Fatalf("got %v", m.Output)
	}
	if m.Pointer != 0 || !m.Halted {
		t.Fatal()
	}
}

func TestHelloWorld(t *testing.T) {
	m := execute(t,
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.",
		Config{Mode: ModeStrictByte},
	)
	var sb strings.Builder
	for _, v := range m.Output {
		sb.WriteByte(byte(v))
	}
	if sb.String() != "Hello World!\n" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestInput(t *testing.T) {
	m := execute(t, ",>,[-<+>]<.", Config{}, 3, 4)
	if !slices.Equal(m.Output, []int{7}) {
		t.Fatalf("got %v", m.Output)
	}
}

func TestCellModes(t *testing.T) {
	m := execute(t, "-.", Config{})
	if !slices.Equal(m.Output, []int{-1}) {
		t.Fatalf("got %v", m.Output)
	}

	m = execute(t, "-.+.", Config{Mode: ModeWrapByte})
	if !slices.Equal(m.Output, []int{255, 0}) {
		t.Fatalf("got %v", m.Output)
	}

	m = execute(t, strings.Repeat("+", 300)+".", Config{Mode: ModeWrapByte})
	if !slices.Equal(m.Output, []int{44}) {
		t.Fatalf("got %v", m.Output)
	}

	m = execute(t, ",.", Config{Mode: ModeWrapByte}, 257)
	if !slices.Equal(m.Output, []int{1}) {
		t.Fatalf("got %v", m.Output)
	}
}

func TestFatalErrors(t *testing.T) {
	for _, c := range []struct {
		code   string
		config Config
		input  []int
		err    error
		ip     int
	}{
		{">>" + strings.Repeat("+", 256), Config{Mode: ModeStrictByte}, nil, ErrCellOverflow, 257},
		{">-", Config{Mode: ModeStrictByte}, nil, ErrCellUnderflow, 1},
		{",", Config{Mode: ModeStrictByte}, []int{256}, ErrCellOverflow, 0},
		{"+,", Config{}, nil, ErrInputExhausted, 1},
		{"><<", Config{}, nil, ErrPointerUnderflow, 2},
	} {
		program, err := Parse(c.code)
		if err != nil {
			t.Fatal(err)
		}
		m := New(program, c.config)
		m.Feed(c.input...)
		err = m.Execute(context.Background())
		if !errors.Is(err, c.err) {
			t.Fatalf("%q: got %v", c.code, err)
		}
		var machineErr *MachineError
		if !errors.As(err, &machineErr) {
			t.Fatalf("got %T", err)
		}
		if machineErr.IP != c.ip {
			t.Fatalf("%q: ip %d", c.code, machineErr.IP)
		}
		if !m.Halted || m.Err == nil {
			t.Fatal()
		}
	}
}

func TestMachineErrorWindow(t *testing.T) {
	program, err := Assemble(
		Segment{Label: "fill", Code: "+++>++>+"},
		Segment{Label: "underflow", Code: "<<<<"},
	)
	if err != nil {
		t.Fatal(err)
	}
	m := New(program, Config{})
	err = m.Execute(context.Background())
	var machineErr *MachineError
	if !errors.As(err, &machineErr) {
		t.Fatalf("got %v", err)
	}
	if machineErr.Label != "underflow" {
		t.Fatalf("got %q", machineErr.Label)
	}
	if machineErr.Pointer != 0 || machineErr.WindowStart != 0 {
		t.Fatalf("got %+v", machineErr)
	}
	if !slices.Equal(machineErr.Window[:4], []int{3, 2, 1, 0}) {
		t.Fatalf("got %v", machineErr.Window)
	}
	if !strings.Contains(err.Error(), "(underflow)") {
		t.Fatalf("got %v", err)
	}
}

func TestRunYield(t *testing.T) {
	program, err := Parse("+++[-]")
	if err != nil {
		t.Fatal(err)
	}
	m := New(program, Config{
		YieldEvery: 2,
	})
	n := 0
	for interrupt, err := range m.Run {
		if err != nil {
			t.Fatal(err)
		}
		if interrupt != InterruptYield {
			t.Fatalf("got %v", interrupt)
		}
		n++
		if n == 2 {
			break
		}
	}
	if m.Halted {
		t.Fatal("should be suspended")
	}
	if m.Steps != 4 {
		t.Fatalf("got %d", m.Steps)
	}
	// resume
	for _, err := range m.Run {
		if err != nil {
			t.Fatal(err)
		}
	}
	if !m.Halted || m.Cell(0) != 0 {
		t.Fatal()
	}
}

func TestExecuteCanceled(t *testing.T) {
	program, err := Parse("+[]")
	if err != nil {
		t.Fatal(err)
	}
	m := New(program, Config{
		YieldEvery: 100,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Execute(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if m.Halted {
		t.Fatal()
	}
}

func TestProfile(t *testing.T) {
	program, err := Assemble(
		Segment{Label: "init", Code: "+++"},
		Segment{Label: "loop", Code: "[-]"},
		Segment{Label: "init", Code: "+"},
	)
	if err != nil {
		t.Fatal(err)
	}
	m := New(program, Config{
		Profile: true,
	})
	if err := m.Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	profile, err := m.Profile()
	if err != nil {
		t.Fatal(err)
	}
	// ']' jumps back onto '[', so each of the three instructions runs three times
	if profile.Spans[1].Count != 9 {
		t.Fatalf("got %+v", profile.Spans[1])
	}
	if profile.ByLabel["init"] != 4 {
		t.Fatalf("got %v", profile.ByLabel)
	}
	if profile.Total != m.Steps || profile.Total != 13 {
		t.Fatalf("got %d", profile.Total)
	}
	if profile.ByOp['-'] != 3 || profile.ByOp['+'] != 4 {
		t.Fatalf("got %v", profile.ByOp)
	}
	if !strings.Contains(profile.String(), "loop") {
		t.Fatalf("got %s", profile.String())
	}

	unprofiled := New(program, Config{})
	if _, err := unprofiled.Profile(); !errors.Is(err, ErrNotProfiling) {
		t.Fatalf("got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	program, err := Parse("+++[>++<-]>.")
	if err != nil {
		t.Fatal(err)
	}
	m := New(program, Config{
		YieldEvery: 5,
		Profile:    true,
	})
	for _, err := range m.Run {
		if err != nil {
			t.Fatal(err)
		}
		break
	}

	buf := new(bytes.Buffer)
	if err := m.Snapshot(buf); err != nil {
		t.Fatal(err)
	}
	restored := New(program, m.Config)
	if err := restored.Restore(buf); err != nil {
		t.Fatal(err)
	}
	if restored.IP != m.IP || restored.Steps != m.Steps || !slices.Equal(restored.Cells, m.Cells) {
		t.Fatal()
	}

	for _, m := range []*Machine{m, restored} {
		if err := m.Execute(context.Background()); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(m.Output, []int{6}) {
			t.Fatalf("got %v", m.Output)
		}
	}
	if !slices.Equal(m.Visits, restored.Visits) {
		t.Fatal()
	}
}

func TestParseCellMode(t *testing.T) {
	for _, mode := range []CellMode{ModeUnbounded, ModeStrictByte, ModeWrapByte} {
		parsed, err := ParseCellMode(mode.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != mode {
			t.Fatalf("got %v", parsed)
		}
	}
	if _, err := ParseCellMode("nibble"); err == nil {
		t.Fatal()
	}
}
