package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/vars"
)

var (
	tapeSizeFlag = cmds.Var[int]("-tape-size", "number of tape cells")
	boundsFlag   = cmds.Var[string]("-bounds", "error|wrap, cursor movement off the tape")
	outputFlag   = cmds.Var[string]("-output", "ascii|raw, rendering of bytes above 0x7f")
)

// LoadOptions resolves machine options. Command line flags take precedence over config
// files, which take precedence over the defaults.
type LoadOptions func() (bfvm.Options, error)

func (Module) LoadOptions(
	loader configs.Loader,
) LoadOptions {
	return func() (options bfvm.Options, err error) {
		if err := loader.Err(); err != nil {
			return options, fmt.Errorf("load config: %w", err)
		}
		options = bfvm.DefaultOptions()

		if size := vars.FirstNonZero(
			*tapeSizeFlag,
			configs.First[int](loader, "tape_size"),
		); size != 0 {
			if size < 0 {
				return options, fmt.Errorf("bad tape size: %d", size)
			}
			options.TapeSize = size
		}

		if str := vars.FirstNonZero(
			*boundsFlag,
			configs.First[string](loader, "bounds"),
		); str != "" {
			options.Bounds, err = bfvm.ParseBoundsPolicy(str)
			if err != nil {
				return options, err
			}
		}

		if str := vars.FirstNonZero(
			*outputFlag,
			configs.First[string](loader, "output"),
		); str != "" {
			options.Output, err = bfvm.ParseOutputMode(str)
			if err != nil {
				return options, err
			}
		}

		return options, nil
	}
}

// Options panics on invalid settings; entry points call LoadOptions first to report them.
func (Module) Options(
	load LoadOptions,
	logger logs.Logger,
) bfvm.Options {
	options, err := load()
	if err != nil {
		panic(err)
	}
	logger.Debug("options",
		"tape_size", options.TapeSize,
		"bounds", options.Bounds,
		"output", options.Output,
	)
	return options
}
