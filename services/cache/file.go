package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"sjsage522/zenlesscollector/logger"
	apperrors "sjsage522/zenlesscollector/pkg/errors"
)

// FileStore keeps the snapshot as a JSON object in a single file
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a file-backed snapshot store
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, log: logger.ForStore()}
}

// Name returns the backend name
func (f *FileStore) Name() string {
	return "file"
}

// Load reads the snapshot file. A missing file is the first run.
func (f *FileStore) Load(ctx context.Context) (Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, apperrors.NewCache(f.Name(), "read "+f.path, err)
	}

	snapshot := Snapshot{}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, apperrors.NewCache(f.Name(), "decode "+f.path, err)
	}
	return snapshot, nil
}

// Save overwrites the snapshot file via a temp file and rename
func (f *FileStore) Save(ctx context.Context, snapshot Snapshot) error {
	if snapshot == nil {
		snapshot = Snapshot{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return apperrors.NewCache(f.Name(), "encode snapshot", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return apperrors.NewCache(f.Name(), "write "+f.path, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return apperrors.NewCache(f.Name(), "write "+f.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.NewCache(f.Name(), "write "+f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewCache(f.Name(), "write "+f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return apperrors.NewCache(f.Name(), "write "+f.path, err)
	}

	f.log.Debug().Str("path", f.path).Int("codes", len(snapshot)).Msg("Saved code snapshot")
	return nil
}
