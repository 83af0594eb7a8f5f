package main

import (
	"github.com/reusee/brainvm/brainconfigs"
	"github.com/reusee/brainvm/compiler"
	"github.com/reusee/brainvm/debugs"
	"github.com/reusee/brainvm/tape"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Compiler compiler.Module
	Tape     tape.Module
	Configs  brainconfigs.Module
	Debugs   debugs.Module
}
