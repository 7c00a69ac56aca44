package credentials

import (
	"context"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
	"sync"
	"time"
)

// StaticSource serves a credential injected through configuration or the
// environment. A refreshed credential replaces the in-memory value only;
// nothing is written back.
type StaticSource struct {
	mu     sync.Mutex
	cred   *models.BearerCredential
	logger providers.Logger
}

func NewStaticSource(conf structures.CredentialsConfig, logger providers.Logger) (*StaticSource, error) {
	if conf.AccessToken == "" {
		return &StaticSource{logger: logger}, nil
	}
	var expiresAt time.Time
	if conf.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, conf.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("%w: credentials.expiresAt: %w", models.ErrConfigMissing, err)
		}
		expiresAt = t
	}
	return &StaticSource{
		cred: &models.BearerCredential{
			AccessToken:  conf.AccessToken,
			RefreshToken: conf.RefreshToken,
			ExpiresAt:    expiresAt,
			UserID:       conf.UserID,
			Scope:        conf.Scope,
			TokenType:    conf.TokenType,
		},
		logger: logger,
	}, nil
}

func (s *StaticSource) Load(_ context.Context) (*models.BearerCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cred == nil {
		return nil, fmt.Errorf("%w: no static access token configured", models.ErrCredentialMissing)
	}
	if err := s.cred.Validate(); err != nil {
		return nil, err
	}
	c := *s.cred
	return &c, nil
}

// RefreshOptional is true: a static token is often injected without a
// refresh token or client secret.
func (s *StaticSource) RefreshOptional() bool {
	return true
}

func (s *StaticSource) Save(_ context.Context, cred *models.BearerCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *cred
	s.cred = &c
	s.logger.Warnf(providers.TypeToken, "Static credential refreshed in memory only; update the configured tokens before the next run")
	return nil
}
