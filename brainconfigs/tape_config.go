package brainconfigs

import (
	"fmt"

	"github.com/reusee/brainvm/cmds"
	"github.com/reusee/brainvm/configs"
	"github.com/reusee/brainvm/modes"
	"github.com/reusee/brainvm/tape"
	"github.com/reusee/brainvm/vars"
	"github.com/reusee/e5"
)

var (
	cellModeFlag   = cmds.Choice("-mode", "unbounded", "byte", "wrap")
	profileFlag    = cmds.Var[string]("-profile")
	yieldEveryFlag = cmds.Var[int]("-yield-every")
	inputFlag      = cmds.Collect[int]("-input")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func (Module) TapeConfig(
	loader configs.Loader,
	mode modes.Mode,
) tape.Config {
	var config tape.Config

	name := vars.FirstNonZero(
		*cellModeFlag,
		configs.First[string](loader, "cell_mode"),
	)
	if name != "" {
		cellMode, err := tape.ParseCellMode(name)
		if err != nil {
			panic(wrap(err))
		}
		config.Mode = cellMode
	}

	switch {
	case *profileFlag != "":
		profile, ok := vars.ParseBool(*profileFlag)
		if !ok {
			panic(wrap(fmt.Errorf("bad -profile value: %q", *profileFlag)))
		}
		config.Profile = profile
	default:
		var profile bool
		if err := loader.AssignFirst("profile", &profile); err == nil {
			config.Profile = profile
		} else {
			// count visits by default while developing
			config.Profile = mode == modes.ModeDevelopment
		}
	}

	config.YieldEvery = vars.FirstNonZero(
		*yieldEveryFlag,
		configs.First[int](loader, "yield_every"),
	)

	return config
}

type Inputs []int

// Inputs collects -input flags, then the inputs lists of every config file in search order.
func (Module) Inputs(
	loader configs.Loader,
) (ret Inputs) {
	ret = append(ret, *inputFlag...)
	for list := range configs.All[[]int](loader, "inputs") {
		ret = append(ret, list...)
	}
	return
}
