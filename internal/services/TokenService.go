package services

import (
	"context"
	"fitheat/internal/clients"
	"fitheat/internal/credentials"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
	"time"
)

type TokenServiceInterface interface {
	ObtainValidCredential(ctx context.Context) (*models.BearerCredential, error)
}

// TokenService guarantees a bearer credential that will not expire during
// the run. A credential expiring within the window is refreshed and the
// result is persisted before it is handed out.
type TokenService struct {
	store     credentials.StoreInterface
	refresher clients.RefresherInterface
	window    time.Duration
	now       func() time.Time
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
}

func NewTokenService(conf *structures.Config, store credentials.StoreInterface, refresher clients.RefresherInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) TokenServiceInterface {
	return &TokenService{
		store:     store,
		refresher: refresher,
		window:    time.Duration(conf.Token.ExpirationWindow) * time.Second,
		now:       time.Now,
		logger:    logger,
		metrics:   metrics,
	}
}

func (ts *TokenService) ObtainValidCredential(ctx context.Context) (*models.BearerCredential, error) {
	cred, err := ts.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := cred.ExpiresIn(ts.now())
	if remaining > ts.window {
		ts.logger.Debugf(providers.TypeToken, "Token valid for another %s", remaining.Truncate(time.Second))
		return cred, nil
	}

	if !ts.canRefresh(cred) {
		if remaining <= 0 {
			ts.metrics.IncTokenRefreshes("failed")
			return nil, fmt.Errorf("%w: static credential expired and cannot be refreshed", models.ErrRefreshFailed)
		}
		ts.logger.Warnf(providers.TypeToken, "Token expires in %s and cannot be refreshed, using it as is", remaining.Truncate(time.Second))
		return cred, nil
	}

	ts.logger.Infof(providers.TypeToken, "Token expires in %s, refreshing...", remaining.Truncate(time.Second))
	refreshed, err := ts.refresher.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		ts.metrics.IncTokenRefreshes("failed")
		return nil, err
	}
	if refreshed.UserID == "" {
		refreshed.UserID = cred.UserID
	}
	if refreshed.Scope == "" {
		refreshed.Scope = cred.Scope
	}

	// The old refresh token is spent now; running on without the new one
	// persisted would strand the next run.
	if err := ts.store.Save(ctx, refreshed); err != nil {
		ts.metrics.IncTokenRefreshes("unpersisted")
		return nil, fmt.Errorf("%w: persisting refreshed credential: %w", models.ErrRefreshFailed, err)
	}
	ts.metrics.IncTokenRefreshes("ok")
	ts.logger.Infof(providers.TypeToken, "Token refreshed.")
	return refreshed, nil
}

// canRefresh is false only for a refresh-optional source missing either the
// refresh token or the client credentials. Other sources always attempt the
// grant, so a missing piece surfaces as ErrRefreshFailed.
func (ts *TokenService) canRefresh(cred *models.BearerCredential) bool {
	optional, ok := ts.store.(credentials.RefreshOptional)
	if !ok || !optional.RefreshOptional() {
		return true
	}
	return cred.RefreshToken != "" && ts.refresher.Ready()
}
