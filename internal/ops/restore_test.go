package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreSaveFile_OverwritesLiveSave(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "guildhall.json")
	backupPath := filepath.Join(dir, "old.bak")
	require.NoError(t, os.WriteFile(savePath, []byte(`{"gold":1}`), 0o644))
	require.NoError(t, os.WriteFile(backupPath, []byte(`{"gold":999}`), 0o644))

	require.NoError(t, RestoreSaveFile(backupPath, savePath))

	data, err := os.ReadFile(savePath)
	require.NoError(t, err)
	assert.Equal(t, `{"gold":999}`, string(data))

	_, err = os.Stat(savePath + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRestoreSaveFile_CreatesMissingTargetDir(t *testing.T) {
	dir := t.TempDir()
	backupPath := filepath.Join(dir, "old.bak")
	require.NoError(t, os.WriteFile(backupPath, []byte(`{}`), 0o644))

	savePath := filepath.Join(dir, "nested", "data", "guildhall.json")
	require.NoError(t, RestoreSaveFile(backupPath, savePath))

	_, err := os.Stat(savePath)
	assert.NoError(t, err)
}

func TestRestoreSaveFile_Errors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, RestoreSaveFile("", filepath.Join(dir, "save.json")))
	assert.Error(t, RestoreSaveFile(filepath.Join(dir, "save.json"), ""))
	assert.Error(t, RestoreSaveFile(filepath.Join(dir, "missing.bak"), filepath.Join(dir, "save.json")))
}
