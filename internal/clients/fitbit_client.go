package clients

import (
	"context"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBody = 512

type FitbitClientInterface interface {
	GetSleep(ctx context.Context, cred *models.BearerCredential, r models.DateRange) ([]models.RawLogRecord, error)
	GetActiveZoneMinutes(ctx context.Context, cred *models.BearerCredential, r models.DateRange) ([]models.RawLogRecord, error)
}

type FitbitClient struct {
	httpClient   *http.Client
	baseURL      string
	acceptLocale string
	cache        providers.CacheProviderInterface
	loc          *time.Location
	logger       providers.Logger
}

func NewFitbitClient(conf *structures.Config, httpClient *http.Client, cache providers.CacheProviderInterface, loc *time.Location, logger providers.Logger) FitbitClientInterface {
	return &FitbitClient{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(conf.Fitbit.ApiBaseURL, "/"),
		acceptLocale: conf.Fitbit.AcceptLocale,
		cache:        cache,
		loc:          loc,
		logger:       logger,
	}
}

func (c *FitbitClient) GetSleep(ctx context.Context, cred *models.BearerCredential, r models.DateRange) ([]models.RawLogRecord, error) {
	url := fmt.Sprintf("%s/1.2/user/%s/sleep/date/%s/%s.json",
		c.baseURL, cred.UserID, r.From.Format(models.DateLayout), r.To.Format(models.DateLayout))
	body, err := c.get(ctx, cred, url, models.KindSleep)
	if err != nil {
		return nil, err
	}
	return models.ParseSleepPayload(body, c.loc)
}

func (c *FitbitClient) GetActiveZoneMinutes(ctx context.Context, cred *models.BearerCredential, r models.DateRange) ([]models.RawLogRecord, error) {
	url := fmt.Sprintf("%s/1/user/%s/activities/active-zone-minutes/date/%s/%s.json",
		c.baseURL, cred.UserID, r.From.Format(models.DateLayout), r.To.Format(models.DateLayout))
	body, err := c.get(ctx, cred, url, models.KindActivity)
	if err != nil {
		return nil, err
	}
	return models.ParseActivityPayload(body, c.loc)
}

// get returns the response body of an authenticated GET. Only successful
// bodies are cached; any non-2xx status is an error.
func (c *FitbitClient) get(ctx context.Context, cred *models.BearerCredential, url string, kind models.LogKind) ([]byte, error) {
	logType := providers.GetLogTypeByKind(kind)
	if body, ok := c.cache.Get(url); ok {
		c.logger.Debugf(logType, "Cache hit for %s", url)
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrTransport, err)
	}
	cred.OAuth2Token().SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")
	if c.acceptLocale != "" {
		req.Header.Set("Accept-Locale", c.acceptLocale)
	}

	c.logger.Debugf(logType, "GET %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: GET %s: status %d: %s", models.ErrTransport, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", models.ErrTransport, req.URL.Path, err)
	}
	c.cache.Set(url, body)
	return body, nil
}
