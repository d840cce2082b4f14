package save

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore persists the snapshot as a single JSON file. Writes go
// through a temp file and rename, so an interrupted save leaves the
// previous snapshot intact.
type FileStore struct {
	path string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dataDir, "guildhall.json")}, nil
}

// Path returns the save file location (used by backup rotation).
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) (Snapshot, bool, error) {
	_ = ctx
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A malformed snapshot degrades to a fresh game rather than
		// aborting.
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *FileStore) Save(ctx context.Context, snap Snapshot) error {
	_ = ctx
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Close() error { return nil }
