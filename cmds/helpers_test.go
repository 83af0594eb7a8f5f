package cmds

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	vars := Var[int]("-TestVar-vars")
	file := Var[string]("-TestVar-file")
	GlobalExecutor.MustExecute([]string{
		"-TestVar-vars", "3",
		"-TestVar-file", "count.asm",
	})
	if *vars != 3 {
		t.Fatalf("got %d", *vars)
	}
	if *file != "count.asm" {
		t.Fatalf("got %q", *file)
	}

	GlobalExecutor.MustExecute([]string{
		"-TestVar-vars.",
	})
	if *vars != 0 {
		t.Fatalf("got %d", *vars)
	}

	err := GlobalExecutor.Execute([]string{
		"-TestVar-vars", "three",
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestSwitch(t *testing.T) {
	chars := Switch("-TestSwitch-chars")
	GlobalExecutor.MustExecute([]string{
		"-TestSwitch-chars",
	})
	if !*chars {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!-TestSwitch-chars",
	})
	if *chars {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	inputs := Collect[int]("-TestCollect-input")
	GlobalExecutor.MustExecute([]string{
		"-TestCollect-input", "7",
		"-TestCollect-input", "-1",
	})
	if str := fmt.Sprintf("%v", *inputs); str != "[7 -1]" {
		t.Fatalf("got %s", str)
	}

	GlobalExecutor.MustExecute([]string{
		"-TestCollect-input.",
		"-TestCollect-input", "9",
	})
	if str := fmt.Sprintf("%v", *inputs); str != "[9]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type format string
	v := Var[format]("-TestTypedVar-emit")
	GlobalExecutor.MustExecute([]string{
		"-TestTypedVar-emit", "asm",
	})
	if *v != "asm" {
		t.Fatalf("got %q", *v)
	}
}

func TestChoice(t *testing.T) {
	mode := Choice("-TestChoice-mode", "unbounded", "byte", "wrap")
	GlobalExecutor.MustExecute([]string{
		"-TestChoice-mode", "wrap",
	})
	if *mode != "wrap" {
		t.Fatalf("got %q", *mode)
	}

	err := GlobalExecutor.Execute([]string{
		"-TestChoice-mode", "nibble",
	})
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "unbounded, byte, wrap") {
		t.Fatalf("got %v", err)
	}
	if errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
	// rejected values leave the previous one
	if *mode != "wrap" {
		t.Fatalf("got %q", *mode)
	}

	GlobalExecutor.MustExecute([]string{
		"-TestChoice-mode.",
	})
	if *mode != "" {
		t.Fatalf("got %q", *mode)
	}
}
