package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "carnitrack"
	dbFileName = "carnitrack.db"
	dbEnvVar   = "CARNITRACK_DB"
)

func DefaultStorePath() (string, error) {
	if fromEnv := os.Getenv(dbEnvVar); fromEnv != "" {
		return fromEnv, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureStoreDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	return nil
}
