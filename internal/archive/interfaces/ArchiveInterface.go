package interfaces

import "fitheat/internal/models"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

// ArchiveInterface keeps the raw records of a (kind, year) run so a later
// run can re-render without network access.
type ArchiveInterface interface {
	Save(kind models.LogKind, year int, records []models.RawLogRecord) error
	Load(kind models.LogKind, year int) ([]models.RawLogRecord, error)
}
