package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// AppDirName is the per-user directory holding config and data.
const AppDirName = ".pyrun"

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// AppPath joins elem under ~/.pyrun.
func AppPath(elem ...string) string {
	return filepath.Join(append([]string{UserHomeDir(), AppDirName}, elem...)...)
}

// ExpandPath resolves a leading "~/" and cleans relative paths.
func ExpandPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if path == "~" {
		return UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}
