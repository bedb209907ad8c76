package fireblocks

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde resolves a leading ~ in path to the current user's home
// directory. Paths not beginning with ~ are returned unchanged, as is the
// input when the home directory cannot be resolved; expansion is
// best-effort and never fails the caller.
func ExpandTilde(path string) string {
	return expandTilde(path, os.UserHomeDir)
}

func expandTilde(path string, homeDir func() (string, error)) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := homeDir()
	if err != nil || home == "" {
		return path
	}
	rest := strings.TrimPrefix(path, "~")
	rest = strings.TrimPrefix(rest, string(filepath.Separator))
	rest = strings.TrimPrefix(rest, "/")
	return filepath.Join(home, rest)
}
