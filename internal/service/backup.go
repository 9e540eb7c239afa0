package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// CreateBackup copies the store file and writes a .sha256 sidecar next to
// the copy.
func CreateBackup(storePath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(storePath) == "" {
		return BackupInfo{}, fmt.Errorf("store path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(storePath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func ListBackups(dir string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}
	items := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat backup %s: %w", path, err)
		}
		item := BackupInfo{Path: path, CreatedAt: info.ModTime(), SizeBytes: info.Size()}
		if sum, err := os.ReadFile(path + ".sha256"); err == nil {
			item.Checksum = strings.TrimSpace(string(sum))
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// RestoreBackup copies a backup over the store file, verifying the sidecar
// checksum when one exists. It refuses to overwrite an existing store
// unless forced.
func RestoreBackup(backupPath, storePath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(storePath) == "" {
		return fmt.Errorf("backup path and store path are required")
	}
	if !force {
		if _, err := os.Stat(storePath); err == nil {
			return fmt.Errorf("store already exists at %s; use --force to overwrite", storePath)
		}
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if actual != strings.TrimSpace(string(expected)) {
			return fmt.Errorf("backup checksum mismatch for %s", backupPath)
		}
	}
	if err := os.MkdirAll(filepath.Dir(storePath), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	return copyFile(backupPath, storePath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Sync()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
