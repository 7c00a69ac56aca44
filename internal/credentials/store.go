package credentials

import (
	"context"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
)

// StoreInterface is the persistent home of the single bearer credential
// document. Load returns models.ErrCredentialMissing when there is no
// document and models.ErrMalformedPayload when there is one but it cannot
// be used. Save replaces the whole document.
type StoreInterface interface {
	Load(ctx context.Context) (*models.BearerCredential, error)
	Save(ctx context.Context, cred *models.BearerCredential) error
}

// RefreshOptional is implemented by sources whose credential may still be
// used until it expires when there is no way to refresh it.
type RefreshOptional interface {
	RefreshOptional() bool
}

func NewStore(conf *structures.Config, logger providers.Logger) (StoreInterface, error) {
	switch conf.Credentials.Source {
	case "static":
		logger.Infof(providers.TypeToken, "Using static credential source")
		src, err := NewStaticSource(conf.Credentials, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	case "store", "":
		if conf.Credentials.FilePath == "" {
			return nil, fmt.Errorf("%w: credentials.filePath", models.ErrConfigMissing)
		}
		logger.Infof(providers.TypeToken, "Using credential document %s", conf.Credentials.FilePath)
		return NewFileStore(conf.Credentials.FilePath, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown credential source %q", models.ErrConfigMissing, conf.Credentials.Source)
	}
}
