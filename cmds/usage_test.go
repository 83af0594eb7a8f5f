package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-mode", Func(func(string) {
	}).Desc("cell mode"))
	executor.Define("run", Sub(map[string]*Command{
		"trace": Func(func() {
		}).Desc("TRACE"),
		"limit": Sub(map[string]*Command{
			"steps": Func(func(int) {}).Desc("STEPS"),
		}).Desc("LIMIT"),
	}).Desc("RUN"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()
	for _, expected := range []string{
		"-mode <string>",
		"cell mode",
		"  trace",
		"    steps <int>",
		"STEPS",
		"-h (help, -help, --help)",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in\n%s", expected, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases printed more than once:\n%s", out)
	}
	executor.PrintUsage()
}

func TestUsageAliasSortedFirst(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Func(func() {}).Desc("RUN").Alias("exec", "-r"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "run (exec, -r)") {
		t.Fatalf("got\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "exec") || strings.HasPrefix(line, "-r ") ||
			strings.HasPrefix(line, "--help") {
			t.Fatalf("alias printed as name: %q", line)
		}
	}
	if strings.Count(out, "RUN") != 1 {
		t.Fatalf("got\n%s", out)
	}
}
