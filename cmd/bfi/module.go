package main

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Configs bfconfigs.Module
	Debugs  debugs.Module
}
