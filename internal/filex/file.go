package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default location of the SQLite session database, relative to the working
// directory.
const (
	SessionDir    = ".craftconnect"
	SessionDBFile = "session.db"
)

func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SessionDBPath returns path unchanged when set. Otherwise it creates
// SessionDir under the working directory and returns the database file in it.
func SessionDBPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := EnsureSubdDir(SessionDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionDBFile), nil
}
