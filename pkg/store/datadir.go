package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "habitquest"

// DefaultDataDir returns where habitquest keeps template.md and debug.log when
// neither HABITQUEST_DIR nor --dir is given.
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	return filepath.Join(dataHome(goos), appDirName)
}

// dataHome is the per-user base directory for application data:
// Application Support on macOS, LOCALAPPDATA/APPDATA on Windows and
// XDG_DATA_HOME elsewhere.
func dataHome(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support")
	case "windows":
		for _, env := range []string{"LOCALAPPDATA", "APPDATA"} {
			if dir := os.Getenv(env); dir != "" {
				return dir
			}
		}
		return home
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		return filepath.Join(home, ".local", "share")
	}
}
