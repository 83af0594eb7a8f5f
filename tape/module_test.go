package tape

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/brainvm/logs"
	"github.com/reusee/dscope"
)

func TestModule(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		newMachine NewMachine,
		newSpan logs.NewSpan,
	) {
		program, err := Parse("<")
		if err != nil {
			t.Fatal(err)
		}
		m := newMachine(program, Config{})
		ctx, span := newSpan(context.Background(), "")
		err = m.Execute(ctx)
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), string(span)) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(buf.String(), "machine fault") {
			t.Fatalf("got %q", buf.String())
		}
	})
}
