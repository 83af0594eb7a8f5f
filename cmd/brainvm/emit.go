package main

import (
	"fmt"
	"io"

	"github.com/reusee/brainvm/cmds"
	"github.com/reusee/brainvm/compiler"
	"github.com/reusee/brainvm/layout"
	"github.com/reusee/brainvm/smir"
)

type emitFormat string

const (
	emitNone      emitFormat = ""
	emitAnnotated emitFormat = "annotated"
	emitCode      emitFormat = "code"
	emitAsm       emitFormat = "asm"
	emitLayout    emitFormat = "layout"
)

var emit emitFormat

func init() {
	formats := make(map[string]*cmds.Command)
	for format, desc := range map[emitFormat]string{
		emitAnnotated: "one `label: code` line per instruction",
		emitCode:      "tape code only",
		emitAsm:       "parsed SM-IR assembly",
		emitLayout:    "initial cells, one triple per line",
	} {
		formats[string(format)] = cmds.Func(func() {
			emit = format
		}).Desc(desc)
	}
	cmds.Define("-emit", cmds.Sub(formats).Desc("print compiled output instead of running"))
}

func render(w io.Writer, format emitFormat, instrs smir.Program, output *compiler.Output) (err error) {
	switch format {
	case emitAnnotated:
		_, err = io.WriteString(w, output.Annotated())
	case emitCode:
		_, err = fmt.Fprintln(w, output.Code())
	case emitAsm:
		_, err = io.WriteString(w, instrs.String())
	case emitLayout:
		plan := output.Layout
		for triple := range plan.Triples() {
			cells := plan.Cells[triple*layout.Width : (triple+1)*layout.Width]
			if _, err = fmt.Fprintf(w, "%4d %s %v\n", triple, tripleName(plan, triple), cells); err != nil {
				return
			}
		}
	default:
		err = fmt.Errorf("unknown emit format: %q", format)
	}
	return
}

func tripleName(plan layout.Layout, triple int) string {
	switch {
	case triple == layout.RegA:
		return "reg_a"
	case triple == layout.RegB:
		return "reg_b"
	case triple == layout.RegC:
		return "reg_c"
	case triple == layout.RegD:
		return "reg_d"
	case triple < plan.Base():
		return fmt.Sprintf("var_%d", triple)
	case triple == plan.Base():
		return "base"
	}
	return "stack"
}
