package ops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listBackups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, "backups"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestBackupSaveFile_CopiesSnapshot(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "guildhall.json")
	require.NoError(t, os.WriteFile(savePath, []byte(`{"gold":500}`), 0o644))

	require.NoError(t, BackupSaveFile(savePath, 5))

	names := listBackups(t, dir)
	require.Len(t, names, 1)
	assert.True(t, strings.HasPrefix(names[0], "guildhall.json."))
	assert.True(t, strings.HasSuffix(names[0], ".bak"))

	data, err := os.ReadFile(filepath.Join(dir, "backups", names[0]))
	require.NoError(t, err)
	assert.Equal(t, `{"gold":500}`, string(data))
}

func TestBackupSaveFile_MissingSaveIsANoOp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, BackupSaveFile(filepath.Join(dir, "guildhall.json"), 5))
	assert.Empty(t, listBackups(t, dir))
}

func TestBackupSaveFile_RejectsEmptyPath(t *testing.T) {
	assert.Error(t, BackupSaveFile("", 5))
	assert.Error(t, BackupSaveFile("   ", 5))
}

func TestBackupSaveFile_PrunesOldest(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "guildhall.json")
	require.NoError(t, os.WriteFile(savePath, []byte(`{}`), 0o644))

	for i := 0; i < 5; i++ {
		require.NoError(t, BackupSaveFile(savePath, 2))
	}

	names := listBackups(t, dir)
	assert.Len(t, names, 2)
}

func TestBackupSaveFile_ZeroKeepDisablesPruning(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "guildhall.json")
	require.NoError(t, os.WriteFile(savePath, []byte(`{}`), 0o644))

	for i := 0; i < 3; i++ {
		require.NoError(t, BackupSaveFile(savePath, 0))
	}

	assert.Len(t, listBackups(t, dir), 3)
}

func TestBackupSaveFile_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "guildhall.json")
	require.NoError(t, os.WriteFile(savePath, []byte(`{}`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "backups"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backups", "notes.txt"), []byte("keep me"), 0o644))

	require.NoError(t, BackupSaveFile(savePath, 1))
	require.NoError(t, BackupSaveFile(savePath, 1))

	names := listBackups(t, dir)
	assert.Contains(t, names, "notes.txt")

	var baks int
	for _, n := range names {
		if strings.HasSuffix(n, ".bak") {
			baks++
		}
	}
	assert.Equal(t, 1, baks)
}
