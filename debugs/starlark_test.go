package debugs

import (
	"testing"

	"github.com/reusee/brainvm/layout"
	"github.com/reusee/brainvm/smir"
	"github.com/reusee/brainvm/tape"
	"go.starlark.net/starlark"
)

func dict(pairs ...any) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		d.SetKey(pairs[i].(starlark.Value), pairs[i+1].(starlark.Value))
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	type frame struct {
		IP    int
		steps int
	}

	machineErr := &tape.MachineError{
		Err:     tape.ErrCellOverflow,
		IP:      3,
		Pointer: 1,
		Window:  []int{0, 256},
	}
	span := &tape.Span{
		Start: 4,
		Label: "push_3",
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"halted", true, starlark.True},
		{"code", []byte("+[-]"), starlark.Bytes("+[-]")},
		{"label", "load_addr_4", starlark.String("load_addr_4")},
		{"pointer", 19, starlark.MakeInt(19)},
		{"int64 steps", int64(1 << 40), starlark.MakeInt64(1 << 40)},
		{"uint8 cell", uint8(255), starlark.MakeUint(255)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float64", 0.5, starlark.Float(0.5)},
		{"cell mode", tape.ModeWrapByte, starlark.String("wrap")},
		{"role", layout.Memory, starlark.String("memory")},
		{"op", smir.OpLoadRB, starlark.String("loadrb")},
		{"error", machineErr, starlark.String(machineErr.Error())},
		{"sentinel error", tape.ErrInputExhausted, starlark.String("input exhausted")},
		{"cells", []int{0, 1, 0}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(0), starlark.MakeInt(1), starlark.MakeInt(0),
		})},
		{"[]any", []any{1, "push", true}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.String("push"), starlark.True,
		})},
		{"globals", map[string]any{"ip": 7, "label": "gte"}, dict(
			starlark.String("ip"), starlark.MakeInt(7),
			starlark.String("label"), starlark.String("gte"),
		)},
		{"op counts", map[byte]int{'+': 3}, dict(
			starlark.MakeUint('+'), starlark.MakeInt(3),
		)},
		{"instr", smir.Push(3), dict(
			starlark.String("Op"), starlark.String("push"),
			starlark.String("Arg"), starlark.MakeInt(3),
		)},
		{"program", smir.Program{smir.Pop()}, starlark.NewList([]starlark.Value{dict(
			starlark.String("Op"), starlark.String("pop"),
			starlark.String("Arg"), starlark.MakeInt(0),
		)})},
		{"unexported field", frame{IP: 2, steps: 9}, dict(
			starlark.String("IP"), starlark.MakeInt(2),
		)},
		{"span pointer", span, dict(
			starlark.String("Start"), starlark.MakeInt(4),
			starlark.String("Label"), starlark.String("push_3"),
		)},
		{"pointer to pointer", &span, dict(
			starlark.String("Start"), starlark.MakeInt(4),
			starlark.String("Label"), starlark.String("push_3"),
		)},
		{"nested", map[string]any{
			"spans": []any{
				tape.Span{Label: "init"},
			},
		}, dict(
			starlark.String("spans"), starlark.NewList([]starlark.Value{dict(
				starlark.String("Start"), starlark.MakeInt(0),
				starlark.String("Label"), starlark.String("init"),
			)}),
		)},
		{"nil machine", (*tape.Machine)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
