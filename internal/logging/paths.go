package logging

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLogDir returns ~/.iconcat/logs, or a temp directory fallback
// when the home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".iconcat", "logs")
	}
	return filepath.Join(home, ".iconcat", "logs")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return LogPathIn(DefaultLogDir())
}

// LogPathIn returns the log file path inside dir.
func LogPathIn(dir string) string {
	return filepath.Join(dir, "iconcat.log")
}

// FindLogFile returns explicit if it exists, otherwise the default log
// file if that exists.
func FindLogFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
		return "", fmt.Errorf("log file not found: %s", explicit)
	}

	path := DefaultLogPath()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("no log file found. Run a command with --debug first.\nExpected at: %s", path)
}
