package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

// GoBin is the go command that compiles transpiled programs.
type GoBin string

var goFlag = cmds.Var[string]("-go", "go command used to build transpiled programs")

func (Module) GoBin(
	loader configs.Loader,
) GoBin {
	return vars.FirstNonZero(
		GoBin(*goFlag),
		configs.First[GoBin](loader, "go"),
		"go",
	)
}
