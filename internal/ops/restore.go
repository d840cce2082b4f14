package ops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RestoreSaveFile copies a backup over the live save file. The write
// goes through a temp file and rename so a failed restore leaves the
// current save intact.
func RestoreSaveFile(backupPath, savePath string) error {
	backupPath = filepath.Clean(strings.TrimSpace(backupPath))
	savePath = filepath.Clean(strings.TrimSpace(savePath))
	if backupPath == "" || backupPath == "." {
		return fmt.Errorf("backupPath is required")
	}
	if savePath == "" || savePath == "." {
		return fmt.Errorf("savePath is required")
	}

	src, err := os.Open(backupPath)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return err
	}

	tmp := savePath + ".tmp"
	dst, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, savePath)
}
