package brainconfigs

import (
	"github.com/reusee/brainvm/cmds"
	"github.com/reusee/brainvm/compiler"
	"github.com/reusee/brainvm/configs"
	"github.com/reusee/brainvm/vars"
)

var (
	varsFlag  = cmds.Var[int]("-vars")
	stackFlag = cmds.Var[int]("-stack")
)

func (Module) CompilerOptions(
	loader configs.Loader,
) compiler.Options {
	return compiler.Options{
		Vars: vars.FirstNonZero(
			vars.DerefOrZero(varsFlag),
			configs.First[int](loader, "vars"),
		),
		StackCapacity: vars.FirstNonZero(
			vars.DerefOrZero(stackFlag),
			configs.First[int](loader, "stack_capacity"),
		),
	}
}
