package results

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalFile is the results file picked up from the working directory.
const LocalFile = "results.json"

// DefaultPath resolves the results file path in priority order:
// 1. SMARTTEST_RESULTS environment variable
// 2. ./results.json, when it already exists
// 3. $XDG_DATA_HOME/smarttest/results.json
// 4. ~/.local/share/smarttest/results.json
func DefaultPath() (string, error) {
	if p := os.Getenv("SMARTTEST_RESULTS"); p != "" {
		return p, nil
	}
	if fi, err := os.Stat(LocalFile); err == nil && fi.Mode().IsRegular() {
		return LocalFile, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "smarttest", "results.json"), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
