package compiler

import (
	"github.com/reusee/brainvm/logs"
	"github.com/reusee/brainvm/smir"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Compiler func(program smir.Program, options Options) (*Output, error)

func (Module) Compiler(
	logger logs.Logger,
) Compiler {
	return func(program smir.Program, options Options) (*Output, error) {
		output, err := Compile(program, options)
		if err != nil {
			logger.Error("compile failed", "error", err)
			return nil, err
		}
		logger.Debug("compiled",
			"instructions", len(program),
			"vars", output.Layout.Vars,
			"stack_capacity", output.Layout.StackCapacity,
			"max_depth", output.Analysis.MaxDepth,
			"code_size", len(output.Code()),
		)
		return output, nil
	}
}
