package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/brainvm/brainconfigs"
	"github.com/reusee/brainvm/cmds"
	"github.com/reusee/brainvm/compiler"
	"github.com/reusee/brainvm/debugs"
	"github.com/reusee/brainvm/logs"
	"github.com/reusee/brainvm/modes"
	"github.com/reusee/brainvm/smir"
	"github.com/reusee/brainvm/tape"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

var (
	asmFile   = cmds.Var[string]("-file")
	tapeFile  = cmds.Var[string]("-tape")
	chars     = cmds.Switch("-chars")
	tapOnExit = cmds.Switch("-tap")
	devMode   = cmds.Switch("-dev")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", wrap(err))
		os.Exit(1)
	}
}

func main() {
	cmds.Execute(os.Args[1:])

	if *asmFile == "" && *tapeFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program.smir> or -tape <program.bf> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if *devMode {
		// profiles by default
		scope = scope.Fork(modes.ForDevelopment())
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		compile compiler.Compiler,
		options compiler.Options,
		newMachine tape.NewMachine,
		config tape.Config,
		inputs brainconfigs.Inputs,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "",
			"asm", *asmFile,
			"tape", *tapeFile,
			"mode", config.Mode.String(),
		)

		var program *tape.Program
		if *asmFile != "" {
			source, err := readSource(*asmFile)
			ce(err)
			instrs, err := smir.ParseAsmString(source)
			ce(err)
			output, err := compile(instrs, options)
			if err != nil {
				ce(logs.WrapSpan(ctx, err))
			}
			if emit != emitNone {
				ce(render(os.Stdout, emit, instrs, output))
				return
			}
			program, err = output.Program()
			ce(err)
		} else {
			source, err := readSource(*tapeFile)
			ce(err)
			program, err = loadTape(source)
			ce(err)
		}

		machine := newMachine(program, config)
		machine.Feed(inputs...)
		err := machine.Execute(ctx)
		printOutput(machine.Output)

		if config.Profile {
			profile, err := machine.Profile()
			ce(err)
			fmt.Fprint(os.Stderr, profile)
		}
		if *tapOnExit {
			tap(ctx, "machine", debugs.MachineGlobals(machine))
		}
		if err != nil {
			logger.ErrorContext(ctx, "execution halted", "error", err)
			ce(err)
		}
	})
}

func readSource(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		return string(content), err
	}
	content, err := os.ReadFile(path)
	return string(content), err
}

// annotated code carries a `label:` prefix on its lines
func loadTape(source string) (*tape.Program, error) {
	for line := range strings.Lines(source) {
		if idx := strings.IndexAny(line, tape.Alphabet); idx > 0 &&
			strings.HasSuffix(strings.TrimSpace(line[:idx]), ":") {
			return tape.ParseAnnotated(source)
		}
	}
	return tape.Parse(source)
}

func printOutput(values []int) {
	if *chars {
		var sb strings.Builder
		for _, v := range values {
			sb.WriteByte(byte(v))
		}
		fmt.Print(sb.String())
		return
	}
	for _, v := range values {
		fmt.Println(v)
	}
}
