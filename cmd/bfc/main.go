package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfgo"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

var noBuild = cmds.Switch("-no-build", "only write the go source")

func main() {
	args := cmds.Positional()
	if err := cmds.Execute(os.Args[1:]); err != nil {
		exit(err)
	}
	if len(*args) != 2 {
		exit(errors.New("usage: bfc [options] <in.bf> <out.go>"))
	}
	inPath, outPath := (*args)[0], (*args)[1]

	code, err := os.ReadFile(inPath)
	if err != nil {
		exit(err)
	}
	prog, err := bfvm.NewProgram(inPath, code)
	if err != nil {
		exit(err)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope.Call(func(
		load bfconfigs.LoadOptions,
	) {
		if _, err := load(); err != nil {
			exit(err)
		}
	})
	scope.Call(func(
		transpile bfgo.Transpile,
	) {
		if err := transpile(context.Background(), prog, outPath, *noBuild); err != nil {
			exit(err)
		}
	})
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
