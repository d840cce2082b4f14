package ops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupSaveFile copies the save file into a timestamped sibling under
// <dataDir>/backups and prunes old copies beyond keep. A missing save
// file is not an error; there is simply nothing to back up.
func BackupSaveFile(savePath string, keep int) error {
	savePath = filepath.Clean(strings.TrimSpace(savePath))
	if savePath == "" || savePath == "." {
		return fmt.Errorf("savePath is required")
	}

	src, err := os.Open(savePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer src.Close()

	dir := filepath.Join(filepath.Dir(savePath), "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s.%s.bak", filepath.Base(savePath), time.Now().UTC().Format("20060102T150405.000000000"))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	return prune(dir, filepath.Base(savePath), keep)
}

func prune(dir, base string, keep int) error {
	if keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var backups []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), base+".") && strings.HasSuffix(e.Name(), ".bak") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= keep {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
