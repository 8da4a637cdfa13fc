package tbasconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tbas/cmds"
	"github.com/reusee/tbas/configs"
	"github.com/reusee/tbas/logs"
	"github.com/reusee/tbas/modes"
)

//go:embed schema.cue
var Schema string

var configFlag = cmds.Collect[string]("-config")

func init() {
	cmds.Describe("-config", "load a cue config file, may repeat")
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	// explicit files take precedence
	paths := append([]string(nil), *configFlag...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, Schema)
	}

	filenames := []string{
		"tbas.cue",
		".tbas.cue",
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, Schema)
}
