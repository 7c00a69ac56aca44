package services

import (
	"context"
	"fitheat/internal/archive/interfaces"
	"fitheat/internal/clients"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
)

type FetchServiceInterface interface {
	FetchLogs(ctx context.Context, cred *models.BearerCredential, ranges []models.DateRange, kind models.LogKind) ([]models.RawLogRecord, error)
	Load(ctx context.Context, req *structures.JobRequest) ([]models.RawLogRecord, error)
}

type FetchService struct {
	client  clients.FitbitClientInterface
	archive interfaces.ArchiveInterface
	offline bool
	logger  providers.Logger
}

func NewFetchService(conf *structures.Config, client clients.FitbitClientInterface, archive interfaces.ArchiveInterface, logger providers.Logger) FetchServiceInterface {
	return &FetchService{
		client:  client,
		archive: archive,
		offline: conf.Offline,
		logger:  logger,
	}
}

// FetchLogs pages sleep one request per range; the activity time series
// accepts a whole year, so it is fetched once over the joined span.
// Results are concatenated in range order and any failure aborts.
func (fs *FetchService) FetchLogs(ctx context.Context, cred *models.BearerCredential, ranges []models.DateRange, kind models.LogKind) ([]models.RawLogRecord, error) {
	logType := providers.GetLogTypeByKind(kind)

	switch kind {
	case models.KindSleep:
		var all []models.RawLogRecord
		for _, r := range ranges {
			records, err := fs.client.GetSleep(ctx, cred, r)
			if err != nil {
				return nil, fmt.Errorf("fetching sleep %s: %w", r, err)
			}
			fs.logger.Debugf(logType, "Fetched %d sleep logs for %s", len(records), r)
			all = append(all, records...)
		}
		return all, nil
	case models.KindActivity:
		span := models.Span(ranges)
		records, err := fs.client.GetActiveZoneMinutes(ctx, cred, span)
		if err != nil {
			return nil, fmt.Errorf("fetching activity %s: %w", span, err)
		}
		fs.logger.Debugf(logType, "Fetched %d activity entries for %s", len(records), span)
		return records, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedKind, kind)
	}
}

// Load returns the raw records of a job: replayed from the archive when
// offline, otherwise fetched and then archived.
func (fs *FetchService) Load(ctx context.Context, req *structures.JobRequest) ([]models.RawLogRecord, error) {
	logType := providers.GetLogTypeByKind(req.Kind)
	if fs.offline {
		fs.logger.Infof(logType, "Offline: replaying %s-%d from archive", req.Kind, req.Year)
		return fs.archive.Load(req.Kind, req.Year)
	}

	records, err := fs.FetchLogs(ctx, req.Credential, req.Ranges, req.Kind)
	if err != nil {
		return nil, err
	}
	if err := fs.archive.Save(req.Kind, req.Year, records); err != nil {
		fs.logger.Warnf(logType, "Unable to archive %s-%d: %s", req.Kind, req.Year, err)
	}
	return records, nil
}
