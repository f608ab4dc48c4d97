package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Var[string]("-config", "read settings from this cue file first")

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	var paths []string
	if *configFlag != "" {
		paths = append(paths, *configFlag)
	}

	// tests only see explicitly named files
	if mode != modes.ModeDevelopment {
		var dirs []string
		if dir, err := os.Getwd(); err == nil {
			dirs = append(dirs, dir)
		}
		if dir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, dir)
		}
		dirs = append(dirs, "/etc")
		paths = append(paths, findFiles(dirs, filenames)...)
	}

	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}

func findFiles(dirs []string, names []string) (paths []string) {
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
