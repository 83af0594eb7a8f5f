package brainconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/brainvm/configs"
	"github.com/reusee/brainvm/logs"
)

//go:embed schema.cue
var schema string

// Schema returns the cue schema config files are validated against.
func Schema() string {
	return schema
}

var filenames = []string{
	"brainvm.cue",
	".brainvm.cue",
}

// SearchPaths lists existing config files, most specific first.
func SearchPaths() (paths []string) {
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
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	loader := configs.NewLoader(SearchPaths(), schema)
	if paths := loader.Paths(); len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return loader
}
