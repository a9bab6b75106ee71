package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnlichen/pkg/config"
	"github.com/gnames/gnsys"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed bins.yaml
var BinsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

func EnsureBinsFile(homeDir string) error {
	binsPath := config.BinsFilePath(homeDir)

	// Check if bins file already exists
	if _, err := os.Stat(binsPath); err == nil {
		return nil
	}

	// Write embedded bins.yaml to the config directory
	if err := os.WriteFile(binsPath, []byte(BinsYAML), 0644); err != nil {
		return CopyFileError(binsPath, err)
	}

	return nil
}
