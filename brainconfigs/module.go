package brainconfigs

import (
	"github.com/reusee/brainvm/configs"
	"github.com/reusee/brainvm/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
