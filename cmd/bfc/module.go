package main

import (
	"github.com/reusee/bf/bfgo"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Go bfgo.Module
}
