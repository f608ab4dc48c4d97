package bfgo

import (
	"context"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}

// Transpile writes the Go translation of prog to outPath. Unless noBuild is set, the
// result is then compiled to an executable named after outPath without its extension.
type Transpile func(ctx context.Context, prog *bfvm.Program, outPath string, noBuild bool) error

func (Module) Transpile(
	options bfvm.Options,
	goBin bfconfigs.GoBin,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Transpile {
	return func(ctx context.Context, prog *bfvm.Program, outPath string, noBuild bool) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		src, err := Emit(ctx, prog, options)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, src, 0644); err != nil {
			return err
		}
		logger.InfoContext(ctx, "emitted",
			"source", prog.Name,
			"path", outPath,
			"bytes", len(src),
		)
		if noBuild {
			return nil
		}

		binPath := BinaryPath(outPath)
		if err := Build(ctx, string(goBin), outPath, binPath); err != nil {
			return err
		}
		logger.InfoContext(ctx, "built",
			"path", binPath,
		)
		return nil
	}
}
