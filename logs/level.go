package logs

import (
	"log/slog"

	"github.com/reusee/bf/cmds"
)

var level = new(slog.LevelVar)

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+l.String()))
	}
}

// SetLevel overrides the level selected on the command line.
func SetLevel(l slog.Level) {
	level.Set(l)
}
