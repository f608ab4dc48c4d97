package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap starts an interactive starlark session over globals on the terminal.
type Tap func(ctx context.Context, what string, globals map[string]any)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()
		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Inspect evaluates one starlark expression over globals.
type Inspect func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "inspect",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(ctx.Err().Error())
		})
		defer stop()
		return starlark.EvalOptions(fileOptions, thread, "<inspect>", expr, toStringDict(globals))
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	dict := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		dict[name] = toStarlarkValue(value)
	}
	return dict
}
