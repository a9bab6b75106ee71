package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnlichen"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnlichen by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnlichen by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnlichen/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnlichen/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// BinsFilePath returns the full path to the bins.yaml file holding
// binning threshold schemes.
// Returns ~/.config/gnlichen/bins.yaml by default.
func BinsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "bins.yaml")
}
