package tape

import (
	"github.com/reusee/brainvm/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewMachine func(program *Program, config Config) *Machine

func (Module) NewMachine(
	logger logs.Logger,
) NewMachine {
	return func(program *Program, config Config) *Machine {
		m := New(program, config)
		m.Logger = logger
		return m
	}
}
