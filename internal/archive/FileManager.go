package archive

import (
	"fitheat/internal/archive/interfaces"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
)

const archiveVersion = 1

type archiveFile struct {
	Version int                   `json:"version"`
	Kind    models.LogKind        `json:"kind"`
	Year    int                   `json:"year"`
	Records []models.RawLogRecord `json:"records"`
}

type FileManager struct {
	dir        string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

// NewFileManager returns a no-op archive when archiving is disabled.
func NewFileManager(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) interfaces.ArchiveInterface {
	if !conf.Archive.Enabled {
		return &noopArchive{}
	}
	return &FileManager{
		dir:        conf.Archive.Dir,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) path(kind models.LogKind, year int) string {
	return filepath.Join(f.dir, fmt.Sprintf("%s-%d.json.zst", kind, year))
}

func (f *FileManager) Save(kind models.LogKind, year int, records []models.RawLogRecord) error {
	jsonData, err := json.Marshal(archiveFile{
		Version: archiveVersion,
		Kind:    kind,
		Year:    year,
		Records: records,
	})
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return err
	}

	fileName := f.path(kind, year)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
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

	if err = os.Rename(tmpFile, fileName); err != nil {
		os.Remove(tmpFile)
		return err
	}
	f.logger.Infof(providers.GetLogTypeByKind(kind), "Archived %d raw records to %s", len(records), fileName)
	return nil
}

func (f *FileManager) Load(kind models.LogKind, year int) ([]models.RawLogRecord, error) {
	fileName := f.path(kind, year)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrMalformedPayload, fileName, err)
	}

	var archived archiveFile
	if err := json.Unmarshal(decompressedData, &archived); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrMalformedPayload, fileName, err)
	}
	if archived.Version != archiveVersion || archived.Kind != kind || archived.Year != year {
		return nil, fmt.Errorf("%w: %s holds %s-%d (version %d)", models.ErrMalformedPayload, fileName, archived.Kind, archived.Year, archived.Version)
	}
	return archived.Records, nil
}

type noopArchive struct{}

func (n *noopArchive) Save(_ models.LogKind, _ int, _ []models.RawLogRecord) error { return nil }
func (n *noopArchive) Load(kind models.LogKind, year int) ([]models.RawLogRecord, error) {
	return nil, fmt.Errorf("archive disabled: no %s-%d records", kind, year)
}
