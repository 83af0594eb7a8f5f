package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	if mode := First[string](loader, "cell_mode"); mode != "byte" {
		t.Fatalf("got %v", mode)
	}
	if n := First[int](loader, "stack_capacity"); n != 16 {
		t.Fatalf("got %v", n)
	}
	if n := First[int](loader, "yield_every"); n != 0 {
		t.Fatalf("got %v", n)
	}

}
