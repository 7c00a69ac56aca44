package credentials

import (
	"context"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
)

type FileStore struct {
	path   string
	logger providers.Logger
}

func NewFileStore(path string, logger providers.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (f *FileStore) Load(_ context.Context) (*models.BearerCredential, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", models.ErrCredentialMissing, f.path)
		}
		return nil, err
	}

	var cred models.BearerCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrMalformedPayload, f.path, err)
	}
	if err := cred.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return &cred, nil
}

// Save writes through a synced temp file and renames it over the document,
// so a crash leaves either the old or the new credential on disk.
func (f *FileStore) Save(_ context.Context, cred *models.BearerCredential) error {
	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, f.path); err != nil {
		os.Remove(tmpFile)
		return err
	}
	f.logger.Debugf(providers.TypeToken, "Credential document written to %s", f.path)
	return nil
}
